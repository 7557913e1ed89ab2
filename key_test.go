// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gx

import "testing"

func TestKeyCodeString(t *testing.T) {
	for k, want := range map[KeyCode]string{
		'a':          "a",
		'7':          "7",
		KeyEscape:    "Escape",
		KeyArrowLeft: "Left",
		KeyF1:        "F1",
		KeyF12:       "F12",
		KeyMouse4:    "Mouse4",
		0:            "KeyCode(0)",
		250:          "KeyCode(250)",
	} {
		if got := k.String(); got != want {
			t.Errorf("KeyCode(%d).String() = %q, want %q", uint8(k), got, want)
		}
	}
}

func TestEventString(t *testing.T) {
	for _, tc := range []struct {
		e    Event
		want string
	}{
		{Event{Kind: Quit}, "Quit"},
		{Event{Kind: KeyDown, Key: 'a'}, "KeyDown(a)"},
		{Event{Kind: KeyUp, Key: KeyMouse1}, "KeyUp(Mouse1)"},
		{Event{Kind: CharInput, Char: 'é'}, "CharInput('é')"},
		{Event{Kind: MouseMove, X: 0.5, Y: 1}, "MouseMove(0.500, 1.000)"},
		{Event{}, "EventKind(0)"},
	} {
		if got := tc.e.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestStateString(t *testing.T) {
	if got := Running.String(); got != "Running" {
		t.Errorf("Running.String() = %q", got)
	}
	if got := State(9).String(); got != "State(9)" {
		t.Errorf("State(9).String() = %q", got)
	}
}
