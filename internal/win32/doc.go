// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package win32 is the Windows native backend for gx.
//
// Windows requires that a window only be manipulated from the thread that
// created it, and that this thread pump the window's messages. The caller
// therefore locks a goroutine to its OS thread and calls Driver.Open, Pump
// and Close from it. Interrupt and Blit are the only calls made from other
// threads: Interrupt posts a message, which is safe from any thread, and
// Blit draws through the window's private device context (CS_OWNDC), which
// the caller serializes with Close.
package win32
