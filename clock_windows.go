// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package gx

import "golang.org/x/exp/gx/internal/win32"

func counter() int64          { return win32.PerformanceCounter() }
func counterFrequency() int64 { return win32.PerformanceFrequency() }

// Raise the scheduler resolution to 1ms while a session runs, so Delay does
// not round up to the default 15.6ms tick.
func beginTimerPeriod() { win32.BeginTimerPeriod(1) }
func endTimerPeriod()   { win32.EndTimerPeriod(1) }
