// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gx

import "fmt"

// EventKind is the type of an Event.
type EventKind uint8

const (
	// Quit means the window was closed by the user or the OS.
	Quit EventKind = iota + 1
	// KeyDown means a key or mouse button was pressed. Auto-repeat does not
	// generate further KeyDown events.
	KeyDown
	// KeyUp means a key or mouse button was released.
	KeyUp
	// CharInput carries a typed character.
	CharInput
	// MouseMove carries the cursor position.
	MouseMove
)

var eventKindNames = [...]string{
	Quit:      "Quit",
	KeyDown:   "KeyDown",
	KeyUp:     "KeyUp",
	CharInput: "CharInput",
	MouseMove: "MouseMove",
}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) && eventKindNames[k] != "" {
		return eventKindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// Event is an input event.
type Event struct {
	Kind EventKind

	// Key is set for KeyDown and KeyUp.
	Key KeyCode

	// Char is set for CharInput.
	Char rune

	// X and Y are set for MouseMove. They are the cursor position relative
	// to the client area, normalized to [0, 1], with (0, 0) the top left.
	X, Y float32
}

func (e Event) String() string {
	switch e.Kind {
	case KeyDown, KeyUp:
		return fmt.Sprintf("%v(%v)", e.Kind, e.Key)
	case CharInput:
		return fmt.Sprintf("%v(%q)", e.Kind, e.Char)
	case MouseMove:
		return fmt.Sprintf("%v(%.3f, %.3f)", e.Kind, e.X, e.Y)
	}
	return e.Kind.String()
}
