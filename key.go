// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gx

import "fmt"

// KeyCode identifies a key or mouse button.
//
// Backspace, tab, return, space, the digits and the lowercase letters are
// their ASCII values. Every other key has a named constant.
type KeyCode uint8

const (
	KeyBackspace KeyCode = '\b'
	KeyTab       KeyCode = '\t'
	KeyReturn    KeyCode = '\r'
	KeyEscape    KeyCode = 27
	KeySpace     KeyCode = ' '
)

const (
	KeyShift KeyCode = 128 + iota
	KeyCtrl
	KeyAlt
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Mouse buttons. Mouse4 and Mouse5 are the wheel, turned away from and
	// towards the user. Each wheel step is a KeyDown immediately followed by
	// a KeyUp.
	KeyMouse1 // left
	KeyMouse2 // middle
	KeyMouse3 // right
	KeyMouse4
	KeyMouse5
)

var keyNames = map[KeyCode]string{
	KeyBackspace:  "Backspace",
	KeyTab:        "Tab",
	KeyReturn:     "Return",
	KeyEscape:     "Escape",
	KeySpace:      "Space",
	KeyShift:      "Shift",
	KeyCtrl:       "Ctrl",
	KeyAlt:        "Alt",
	KeyArrowUp:    "Up",
	KeyArrowDown:  "Down",
	KeyArrowLeft:  "Left",
	KeyArrowRight: "Right",
	KeyInsert:     "Insert",
	KeyDelete:     "Delete",
	KeyHome:       "Home",
	KeyEnd:        "End",
	KeyPageUp:     "PageUp",
	KeyPageDown:   "PageDown",
	KeyMouse1:     "Mouse1",
	KeyMouse2:     "Mouse2",
	KeyMouse3:     "Mouse3",
	KeyMouse4:     "Mouse4",
	KeyMouse5:     "Mouse5",
}

func (k KeyCode) String() string {
	switch {
	case k >= '0' && k <= '9', k >= 'a' && k <= 'z':
		return string(rune(k))
	case k >= KeyF1 && k <= KeyF12:
		return fmt.Sprintf("F%d", k-KeyF1+1)
	}
	if s, ok := keyNames[k]; ok {
		return s
	}
	return fmt.Sprintf("KeyCode(%d)", uint8(k))
}
