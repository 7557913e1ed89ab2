// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gx

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

// loggerPtr stores the package logger. It is read when a Session starts.
var loggerPtr atomic.Pointer[zerolog.Logger]

func init() {
	l := zerolog.Nop()
	loggerPtr.Store(&l)
}

// SetLogger sets the logger used by sessions created without
// Options.Logger, including the default session. It takes effect at the
// next Init. By default gx logs nothing.
//
// Levels used by gx:
//   - debug: session start and stop
//   - warn: dropped input events, sampled to once per second
//   - error: failed blits and window teardown
func SetLogger(l zerolog.Logger) {
	loggerPtr.Store(&l)
}
