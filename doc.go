// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gx is a minimal library for writing graphical demos.
//
// It opens a single resizable window, delivers keyboard, mouse and quit
// events to the calling goroutine, blits a raw pixel buffer into the window,
// and provides a monotonic high-resolution clock:
//
//	package main
//
//	import "golang.org/x/exp/gx"
//
//	func main() {
//		const w, h = 640, 480
//		pix := make([]uint32, w*h)
//		gx.Init("demo", w, h)
//		defer gx.Exit()
//		for {
//			for {
//				e, ok := gx.Poll()
//				if !ok {
//					break
//				}
//				if e.Kind == gx.Quit || e.Kind == gx.KeyDown && e.Key == gx.KeyEscape {
//					return
//				}
//			}
//			draw(pix, gx.Now())
//			gx.Paint(pix, w, h)
//			gx.Delay(0.001)
//		}
//	}
//
// The window is owned by a goroutine locked to its own OS thread, which runs
// the native message loop. That goroutine translates native messages into
// Events and passes them to the application through a fixed-size lock-free
// queue. Poll and Paint never wait for it: Poll returns immediately when the
// queue is empty, and Paint skips the frame when the window is busy being
// resized or torn down.
//
// The package-level functions operate on a default Session. Programs that
// need to choose the native driver, the logger or the meter provider create
// their own with NewSession.
package gx
