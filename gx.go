// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gx

import "os"

var std = NewSession(nil)

// Init opens the window of the default session. The window's client area is
// width×height pixels.
//
// A program cannot run without its window, so if the window cannot be
// created Init logs the error and terminates the process. Init panics if the
// default session is already running.
func Init(title string, width, height int) {
	if err := std.Init(title, width, height); err != nil {
		std.log.Error().Err(err).Msg("startup aborted")
		os.Exit(1)
	}
}

// Exit closes the window of the default session. It is a no-op if the
// session is not running. A later Init opens a new window.
func Exit() { std.Exit() }

// Poll returns the oldest pending event of the default session. It reports
// false when there is none. Call it in a loop until it does.
func Poll() (Event, bool) { return std.Poll() }

// Paint stretches a width×height image of 0xRRGGBB pixels onto the window
// of the default session. See Session.Paint.
func Paint(pix []uint32, width, height int) { std.Paint(pix, width, height) }

// Now returns the seconds since the default session's window became usable.
func Now() float64 { return std.Now() }

// Delay sleeps for at least the given number of seconds.
func Delay(seconds float64) { delay(seconds) }

// Default returns the default session used by the package-level functions.
func Default() *Session { return std }
