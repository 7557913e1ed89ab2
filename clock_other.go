// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !windows

package gx

import "time"

// epoch anchors counter to the runtime's monotonic clock.
var epoch = time.Now()

func counter() int64          { return int64(time.Since(epoch)) }
func counterFrequency() int64 { return int64(time.Second) }

func beginTimerPeriod() {}
func endTimerPeriod()   {}
