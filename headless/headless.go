// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package headless provides a gx driver without a display.
//
// Its windows have no native message source. Instead, a test or tool
// injects native messages with Window.Inject, and reads back what gx painted
// with Window.Frame:
//
//	d := new(headless.Driver)
//	s := gx.NewSession(&gx.Options{Driver: d})
//	s.Init("test", 64, 48)
//	d.Window().Inject(native.Msg{Kind: native.KindKeyDown, Key: native.VKEscape})
//	e, _ := s.Poll() // KeyDown(Escape)
package headless

import (
	"errors"
	"image"
	"sync"

	"golang.org/x/image/draw"

	"golang.org/x/exp/gx/internal/swizzle"
	"golang.org/x/exp/gx/native"
)

// ErrClosed is returned by Blit after the window is closed.
var ErrClosed = errors.New("headless: window closed")

// Driver opens headless windows. The zero value is ready to use.
type Driver struct {
	// OpenErr, if non-nil, makes Open fail with this error.
	OpenErr error

	// BeforeClose, if non-nil, is called by each Window's Close on the UI
	// thread, before anything is released.
	BeforeClose func()

	// CloseOnOpen makes each Window's Pump deliver a KindClose message
	// before any injected one, as if the user closed the window at once.
	CloseOnOpen bool

	mu     sync.Mutex
	win    *Window
	opened int
}

// Open returns a new Window with the requested client size.
func (d *Driver) Open(cfg native.Config) (native.Window, error) {
	if d.OpenErr != nil {
		return nil, d.OpenErr
	}
	w := &Window{
		cfg:         cfg,
		width:       cfg.Width,
		height:      cfg.Height,
		msgs:        make(chan injection),
		interrupt:   make(chan struct{}),
		done:        make(chan struct{}),
		beforeClose: d.BeforeClose,
		closeOnOpen: d.CloseOnOpen,
	}
	d.mu.Lock()
	d.win = w
	d.opened++
	d.mu.Unlock()
	return w, nil
}

// Window returns the most recently opened window, or nil if there is none.
func (d *Driver) Window() *Window {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.win
}

// Opened returns how many windows the driver has opened.
func (d *Driver) Opened() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.opened
}

type injection struct {
	m   native.Msg
	ack chan struct{}
}

// Window is a headless native.Window.
type Window struct {
	cfg         native.Config
	msgs        chan injection
	interrupt   chan struct{}
	stopOnce    sync.Once
	done        chan struct{} // closed when Pump returns
	beforeClose func()
	closeOnOpen bool

	mu     sync.Mutex
	width  int
	height int
	src    *image.RGBA // last source image, reused between Blits
	frame  *image.RGBA // last blitted client area
	frames int
	closed bool
}

// Config returns the configuration the window was opened with.
func (w *Window) Config() native.Config { return w.cfg }

// ClientSize returns the current client size, which a KindResize message
// changes.
func (w *Window) ClientSize() (width, height int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width, w.height
}

// Inject delivers m to the running message loop and waits until it has been
// handled. It reports false if the loop has ended. Inject blocks until Pump
// starts.
func (w *Window) Inject(m native.Msg) bool {
	inj := injection{m: m, ack: make(chan struct{})}
	select {
	case w.msgs <- inj:
	case <-w.done:
		return false
	}
	<-inj.ack
	return true
}

// Pump handles injected messages until the handler requests a close or
// Interrupt is called.
func (w *Window) Pump(h native.Handler) (interrupted bool) {
	defer close(w.done)
	if w.closeOnOpen && !h(native.Msg{Kind: native.KindClose}) {
		return false
	}
	for {
		select {
		case inj := <-w.msgs:
			if inj.m.Kind == native.KindResize {
				w.mu.Lock()
				w.width, w.height = int(inj.m.X), int(inj.m.Y)
				w.mu.Unlock()
			}
			ok := h(inj.m)
			close(inj.ack)
			if !ok {
				return false
			}
		case <-w.interrupt:
			return true
		}
	}
}

// Interrupt makes Pump return. It may be called any number of times.
func (w *Window) Interrupt() {
	w.stopOnce.Do(func() { close(w.interrupt) })
}

// Done is closed when Pump returns.
func (w *Window) Done() <-chan struct{} { return w.done }

// Blit scales the source image to dw×dh with nearest-neighbour sampling and
// records it as the current frame.
func (w *Window) Blit(pix []uint32, sw, sh, dw, dh int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}
	if w.src == nil || w.src.Rect.Dx() != sw || w.src.Rect.Dy() != sh {
		w.src = image.NewRGBA(image.Rect(0, 0, sw, sh))
	}
	swizzle.RGBA(w.src.Pix, pix[:sw*sh])
	if w.frame == nil || w.frame.Rect.Dx() != dw || w.frame.Rect.Dy() != dh {
		w.frame = image.NewRGBA(image.Rect(0, 0, dw, dh))
	}
	draw.NearestNeighbor.Scale(w.frame, w.frame.Rect, w.src, w.src.Rect, draw.Src, nil)
	w.frames++
	return nil
}

// Frame returns a copy of the last blitted frame, or nil if nothing has
// been painted.
func (w *Window) Frame() *image.RGBA {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.frame == nil {
		return nil
	}
	f := image.NewRGBA(w.frame.Rect)
	copy(f.Pix, w.frame.Pix)
	return f
}

// Frames returns the number of successful Blits.
func (w *Window) Frames() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.frames
}

// Closed reports whether Close has been called.
func (w *Window) Closed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

// Close releases the window. Blits after Close fail with ErrClosed; the
// last frame stays readable.
func (w *Window) Close() error {
	if w.beforeClose != nil {
		w.beforeClose()
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}
	w.closed = true
	return nil
}
