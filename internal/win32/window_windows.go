// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package win32

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"unicode/utf16"
	"unsafe"

	"golang.org/x/sys/windows"

	"golang.org/x/exp/gx/native"
)

const windowClass = "gx"

// msgInterrupt is posted to the window by Interrupt. Posting to the window
// rather than the thread keeps the message from being lost while a modal
// move or size loop is pumping.
const msgInterrupt = _WM_APP + 1

var (
	wndProcOnce sync.Once
	wndProcPtr  uintptr
)

// current is the window wndProc dispatches to. It is set on the UI thread
// before CreateWindowEx, as creation already sends messages.
var current atomic.Pointer[window]

// Driver opens Win32 windows. The zero value is ready to use.
type Driver struct{}

type window struct {
	hwnd  windows.Handle
	dc    windows.Handle
	inst  windows.Handle
	class *uint16

	// Only used on the UI thread.
	h           native.Handler
	interrupted bool
	buttons     int    // mouse buttons held, for capture
	surrogate   uint16 // high surrogate of a pending WM_CHAR pair

	// Only used by Blit.
	bmi _BITMAPINFO
}

// Open creates the window on the calling thread, sized so that the client
// area, not the outer frame, matches cfg.
func (Driver) Open(cfg native.Config) (native.Window, error) {
	wndProcOnce.Do(func() { wndProcPtr = windows.NewCallback(wndProc) })

	inst, err := _GetModuleHandle(nil)
	if err != nil {
		return nil, fmt.Errorf("win32: GetModuleHandle failed: %w", err)
	}
	class, err := windows.UTF16PtrFromString(windowClass)
	if err != nil {
		return nil, err
	}
	title, err := windows.UTF16PtrFromString(cfg.Title)
	if err != nil {
		return nil, fmt.Errorf("win32: invalid window title: %w", err)
	}

	icon, _ := _LoadIcon(0, _IDI_APPLICATION)
	cursor, _ := _LoadCursor(0, _IDC_ARROW)
	wc := _WNDCLASS{
		Style:         _CS_VREDRAW | _CS_HREDRAW | _CS_OWNDC,
		LpfnWndProc:   wndProcPtr,
		HInstance:     inst,
		HIcon:         icon,
		HCursor:       cursor,
		LpszClassName: class,
	}
	if _, err := _RegisterClass(&wc); err != nil && !errors.Is(err, _ERROR_CLASS_ALREADY_EXISTS) {
		return nil, fmt.Errorf("win32: RegisterClass failed: %w", err)
	}

	r := _RECT{Right: int32(cfg.Width), Bottom: int32(cfg.Height)}
	if err := _AdjustWindowRect(&r, _WS_OVERLAPPEDWINDOW, false); err != nil {
		_UnregisterClass(class, inst)
		return nil, fmt.Errorf("win32: AdjustWindowRect failed: %w", err)
	}

	w := &window{inst: inst, class: class}
	current.Store(w)
	w.hwnd, err = _CreateWindowEx(0, class, title,
		_WS_OVERLAPPEDWINDOW|_WS_VISIBLE,
		_CW_USEDEFAULT, _CW_USEDEFAULT,
		r.Right-r.Left, r.Bottom-r.Top,
		0, 0, inst, 0)
	if err != nil {
		current.Store(nil)
		_UnregisterClass(class, inst)
		return nil, fmt.Errorf("win32: CreateWindowEx failed: %w", err)
	}
	w.dc, err = _GetDC(w.hwnd)
	if err != nil {
		current.Store(nil)
		_DestroyWindow(w.hwnd)
		_UnregisterClass(class, inst)
		return nil, fmt.Errorf("win32: GetDC failed: %w", err)
	}
	_SetStretchBltMode(w.dc, _COLORONCOLOR)
	w.bmi.Header = _BITMAPINFOHEADER{
		Size:        uint32(unsafe.Sizeof(w.bmi.Header)),
		Planes:      1,
		BitCount:    32,
		Compression: _BI_RGB,
	}
	return w, nil
}

func (w *window) ClientSize() (width, height int) {
	var r _RECT
	if err := _GetClientRect(w.hwnd, &r); err != nil {
		return 0, 0
	}
	return int(r.Right - r.Left), int(r.Bottom - r.Top)
}

func (w *window) Pump(h native.Handler) (interrupted bool) {
	w.h = h
	defer func() { w.h = nil }()

	var m _MSG
	for {
		// GetMessage returns 0 for WM_QUIT and -1 only for invalid
		// arguments; either way the loop is over.
		ret, err := _GetMessage(&m, 0, 0, 0)
		if ret == 0 || err != nil {
			return w.interrupted
		}
		_TranslateMessage(&m)
		_DispatchMessage(&m)
	}
}

func (w *window) Interrupt() {
	// Fails harmlessly once the window is destroyed.
	_PostMessage(w.hwnd, msgInterrupt, 0, 0)
}

func (w *window) Blit(pix []uint32, sw, sh, dw, dh int) error {
	if sw <= 0 || sh <= 0 || len(pix) < sw*sh {
		return fmt.Errorf("win32: invalid source image %dx%d with %d pixels", sw, sh, len(pix))
	}
	w.bmi.Header.Width = int32(sw)
	w.bmi.Header.Height = -int32(sh) // negative height for top-down rows
	w.bmi.Header.SizeImage = uint32(sw * sh * 4)
	n := _StretchDIBits(w.dc,
		0, 0, int32(dw), int32(dh),
		0, 0, int32(sw), int32(sh),
		unsafe.Pointer(&pix[0]), &w.bmi, _DIB_RGB_COLORS, _SRCCOPY)
	if n == 0 {
		return errors.New("win32: StretchDIBits failed")
	}
	return nil
}

func (w *window) Close() error {
	current.CompareAndSwap(w, nil)
	// ReleaseDC is a no-op for a CS_OWNDC context and reports failure.
	_ReleaseDC(w.hwnd, w.dc)
	err := _DestroyWindow(w.hwnd)
	if err != nil {
		err = fmt.Errorf("win32: DestroyWindow failed: %w", err)
	}
	if uerr := _UnregisterClass(w.class, w.inst); uerr != nil {
		err = errors.Join(err, fmt.Errorf("win32: UnregisterClass failed: %w", uerr))
	}
	return err
}

func wndProc(hwnd windows.Handle, uMsg uint32, wParam uintptr, lParam uintptr) (lResult uintptr) {
	w := current.Load()
	if w == nil || w.h == nil {
		return _DefWindowProc(hwnd, uMsg, wParam, lParam)
	}

	var m native.Msg
	switch uMsg {
	case msgInterrupt:
		w.interrupted = true
		_PostQuitMessage(0)
		return 0

	case _WM_KEYDOWN, _WM_SYSKEYDOWN:
		m = native.Msg{
			Kind:   native.KindKeyDown,
			Key:    uint8(wParam),
			Repeat: lParam&_KF_REPEAT != 0,
			Alt:    lParam&_KF_ALTDOWN != 0,
		}
		if uMsg == _WM_SYSKEYDOWN {
			m.Kind = native.KindSysKeyDown
		}

	case _WM_KEYUP, _WM_SYSKEYUP:
		m = native.Msg{
			Kind: native.KindKeyUp,
			Key:  uint8(wParam),
			Alt:  lParam&_KF_ALTDOWN != 0,
		}
		if uMsg == _WM_SYSKEYUP {
			m.Kind = native.KindSysKeyUp
		}

	case _WM_CHAR:
		c := rune(uint16(wParam))
		switch {
		case c >= 0xD800 && c < 0xDC00:
			w.surrogate = uint16(c)
			return 0
		case utf16.IsSurrogate(c):
			c = utf16.DecodeRune(rune(w.surrogate), c)
		}
		w.surrogate = 0
		m = native.Msg{Kind: native.KindChar, Char: c}

	case _WM_SYSCHAR:
		// Swallowed along with WM_SYSKEYDOWN; DefWindowProc would beep.
		return 0

	case _WM_MOUSEMOVE:
		m = native.Msg{
			Kind: native.KindMouseMove,
			X:    _GET_X_LPARAM(lParam),
			Y:    _GET_Y_LPARAM(lParam),
		}

	case _WM_LBUTTONDOWN, _WM_MBUTTONDOWN, _WM_RBUTTONDOWN:
		w.press(hwnd)
		m = native.Msg{Kind: native.KindButtonDown, Button: buttonOf(uMsg)}

	case _WM_LBUTTONUP, _WM_MBUTTONUP, _WM_RBUTTONUP:
		w.release()
		m = native.Msg{Kind: native.KindButtonUp, Button: buttonOf(uMsg)}

	case _WM_MOUSEWHEEL:
		m = native.Msg{Kind: native.KindWheel, Delta: _GET_WHEEL_DELTA_WPARAM(wParam)}

	case _WM_SIZE:
		m = native.Msg{
			Kind: native.KindResize,
			X:    int32(_LOWORD(lParam)),
			Y:    int32(_HIWORD(lParam)),
		}

	case _WM_CLOSE:
		m = native.Msg{Kind: native.KindClose}

	default:
		return _DefWindowProc(hwnd, uMsg, wParam, lParam)
	}

	if !w.h(m) {
		_PostQuitMessage(0)
	}
	return 0
}

func buttonOf(uMsg uint32) native.Button {
	switch uMsg {
	case _WM_LBUTTONDOWN, _WM_LBUTTONUP:
		return native.ButtonLeft
	case _WM_MBUTTONDOWN, _WM_MBUTTONUP:
		return native.ButtonMiddle
	case _WM_RBUTTONDOWN, _WM_RBUTTONUP:
		return native.ButtonRight
	}
	return native.ButtonNone
}

// press captures the mouse while any button is held, so the release is
// delivered even if it happens outside the window.
func (w *window) press(hwnd windows.Handle) {
	if w.buttons == 0 {
		_SetCapture(hwnd)
	}
	w.buttons++
}

func (w *window) release() {
	if w.buttons == 0 {
		return
	}
	w.buttons--
	if w.buttons == 0 {
		_ReleaseCapture()
	}
}
