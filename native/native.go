// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package native defines the contract between gx and a native window
// backend.
//
// A Driver opens one Window on the calling goroutine, which gx locks to its
// OS thread for the window's lifetime. The Window's message loop runs on that
// same thread and hands every relevant native message to gx as a Msg. Only
// Interrupt and Blit may be called from other goroutines.
package native

// Config describes the window to open.
type Config struct {
	// Title is the window title.
	Title string

	// Width and Height are the requested client area size in pixels,
	// excluding any title bar and borders.
	Width, Height int
}

// Driver opens native windows.
type Driver interface {
	// Open creates and shows a window. It is called on the UI thread, and
	// the returned Window's Pump and Close are called on that same thread.
	Open(cfg Config) (Window, error)
}

// Handler receives translated native messages on the UI thread. It returns
// false to request that the message loop end, as a native close would.
type Handler func(m Msg) bool

// Window is an open native window.
type Window interface {
	// ClientSize returns the current client area size. It is called on the
	// UI thread once, right after Open.
	ClientSize() (width, height int)

	// Pump runs the blocking message loop, passing messages to h, until h
	// requests a close, the OS ends the loop, or Interrupt is called. It
	// reports whether the loop ended because of Interrupt.
	Pump(h Handler) (interrupted bool)

	// Interrupt asks a running Pump to return. It may be called from any
	// goroutine, and is a no-op once Pump has returned.
	Interrupt()

	// Blit stretches the sw×sh pixels of pix, each 0xRRGGBB in the low 24
	// bits, row-major with the top row first, onto the dw×dh client area.
	// The caller serializes Blit with Close.
	Blit(pix []uint32, sw, sh, dw, dh int) error

	// Close releases the window and its drawable resources. It is called on
	// the UI thread after Pump returns.
	Close() error
}

// Kind is the category of a native message.
type Kind uint8

const (
	KindNone Kind = iota
	KindKeyDown
	KindKeyUp
	KindSysKeyDown
	KindSysKeyUp
	KindChar
	KindMouseMove
	KindButtonDown
	KindButtonUp
	KindWheel
	KindResize
	KindClose
)

var kindNames = [...]string{
	KindNone:       "None",
	KindKeyDown:    "KeyDown",
	KindKeyUp:      "KeyUp",
	KindSysKeyDown: "SysKeyDown",
	KindSysKeyUp:   "SysKeyUp",
	KindChar:       "Char",
	KindMouseMove:  "MouseMove",
	KindButtonDown: "ButtonDown",
	KindButtonUp:   "ButtonUp",
	KindWheel:      "Wheel",
	KindResize:     "Resize",
	KindClose:      "Close",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Button identifies a physical mouse button.
type Button uint8

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// Msg is a native message reduced to the fields gx translates.
type Msg struct {
	Kind Kind

	// Key is the virtual-key code for the key kinds.
	Key uint8

	// Repeat reports that the key was already down before this key-down
	// message, i.e. the message is an auto-repeat.
	Repeat bool

	// Alt reports that Alt was held, for the system key kinds.
	Alt bool

	// Char is the decoded character for KindChar.
	Char rune

	// X and Y are the cursor position in client coordinates for
	// KindMouseMove, and the new client size for KindResize.
	X, Y int32

	// Button is the button for KindButtonDown and KindButtonUp.
	Button Button

	// Delta is the wheel rotation for KindWheel. Positive is away from the
	// user.
	Delta int32
}
