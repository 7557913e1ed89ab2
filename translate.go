// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gx

import "golang.org/x/exp/gx/native"

// vkmap maps virtual-key codes to KeyCodes. Zero means unmapped.
var vkmap = [256]KeyCode{
	native.VKBack:    KeyBackspace,
	native.VKTab:     KeyTab,
	native.VKReturn:  KeyReturn,
	native.VKShift:   KeyShift,
	native.VKControl: KeyCtrl,
	native.VKMenu:    KeyAlt,
	native.VKEscape:  KeyEscape,
	native.VKSpace:   KeySpace,
	native.VKPrior:   KeyPageUp,
	native.VKNext:    KeyPageDown,
	native.VKEnd:     KeyEnd,
	native.VKHome:    KeyHome,
	native.VKLeft:    KeyArrowLeft,
	native.VKUp:      KeyArrowUp,
	native.VKRight:   KeyArrowRight,
	native.VKDown:    KeyArrowDown,
	native.VKInsert:  KeyInsert,
	native.VKDelete:  KeyDelete,
}

func init() {
	for vk := native.VK0; vk <= native.VK9; vk++ {
		vkmap[vk] = KeyCode('0' + vk - native.VK0)
	}
	for vk := native.VKA; vk <= native.VKZ; vk++ {
		vkmap[vk] = KeyCode('a' + vk - native.VKA)
	}
	for vk := native.VKF1; vk <= native.VKF12; vk++ {
		vkmap[vk] = KeyF1 + KeyCode(vk-native.VKF1)
	}
}

var buttonKeys = [...]KeyCode{
	native.ButtonLeft:   KeyMouse1,
	native.ButtonMiddle: KeyMouse2,
	native.ButtonRight:  KeyMouse3,
}

// translation is the outcome of one native message.
type translation struct {
	buf [2]Event
	n   int

	// resize, when set, carries the new client size.
	resize        bool
	width, height int

	// close requests the end of the message loop.
	close bool
}

func (t *translation) emit(e Event) {
	t.buf[t.n] = e
	t.n++
}

func (t *translation) events() []Event { return t.buf[:t.n] }

// translate converts a native message into events, given the current client
// size. It has no other inputs and no side effects.
func translate(m native.Msg, width, height int) (t translation) {
	switch m.Kind {
	case native.KindSysKeyDown:
		if m.Alt && m.Key == native.VKF4 && !m.Repeat {
			t.close = true
			return t
		}
		fallthrough
	case native.KindKeyDown:
		if m.Repeat {
			return t
		}
		if k := vkmap[m.Key]; k != 0 {
			t.emit(Event{Kind: KeyDown, Key: k})
		}

	case native.KindKeyUp, native.KindSysKeyUp:
		if k := vkmap[m.Key]; k != 0 {
			t.emit(Event{Kind: KeyUp, Key: k})
		}

	case native.KindChar:
		t.emit(Event{Kind: CharInput, Char: m.Char})

	case native.KindMouseMove:
		if width <= 0 || height <= 0 {
			return t
		}
		t.emit(Event{
			Kind: MouseMove,
			X:    unit(float32(m.X) / float32(width)),
			Y:    unit(float32(m.Y) / float32(height)),
		})

	case native.KindButtonDown, native.KindButtonUp:
		if int(m.Button) >= len(buttonKeys) || buttonKeys[m.Button] == 0 {
			return t
		}
		kind := KeyDown
		if m.Kind == native.KindButtonUp {
			kind = KeyUp
		}
		t.emit(Event{Kind: kind, Key: buttonKeys[m.Button]})

	case native.KindWheel:
		var k KeyCode
		switch {
		case m.Delta > 0:
			k = KeyMouse4
		case m.Delta < 0:
			k = KeyMouse5
		default:
			return t
		}
		t.emit(Event{Kind: KeyDown, Key: k})
		t.emit(Event{Kind: KeyUp, Key: k})

	case native.KindResize:
		t.resize = true
		t.width, t.height = max(int(m.X), 0), max(int(m.Y), 0)

	case native.KindClose:
		t.close = true
	}
	return t
}

// unit clamps f to [0, 1]. The cursor can leave the client area while a
// button is held and the mouse is captured.
func unit(f float32) float32 {
	return min(max(f, 0), 1)
}
