// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:generate go run golang.org/x/sys/windows/mkwinsyscall -output zsyscall_windows.go syscall_windows.go

package win32

import "golang.org/x/sys/windows"

type _POINT struct {
	X int32
	Y int32
}

type _RECT struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

type _MSG struct {
	Hwnd    windows.Handle
	Message uint32
	Wparam  uintptr
	Lparam  uintptr
	Time    uint32
	Pt      _POINT
}

type _WNDCLASS struct {
	Style         uint32
	LpfnWndProc   uintptr
	CbClsExtra    int32
	CbWndExtra    int32
	HInstance     windows.Handle
	HIcon         windows.Handle
	HCursor       windows.Handle
	HbrBackground windows.Handle
	LpszMenuName  *uint16
	LpszClassName *uint16
}

type _BITMAPINFOHEADER struct {
	Size          uint32
	Width         int32
	Height        int32
	Planes        uint16
	BitCount      uint16
	Compression   uint32
	SizeImage     uint32
	XPelsPerMeter int32
	YPelsPerMeter int32
	ClrUsed       uint32
	ClrImportant  uint32
}

type _RGBQUAD struct {
	Blue     byte
	Green    byte
	Red      byte
	Reserved byte
}

type _BITMAPINFO struct {
	Header _BITMAPINFOHEADER
	Colors [1]_RGBQUAD
}

const (
	_WM_SIZE        = 0x0005
	_WM_CLOSE       = 0x0010
	_WM_KEYDOWN     = 0x0100
	_WM_KEYUP       = 0x0101
	_WM_CHAR        = 0x0102
	_WM_SYSKEYDOWN  = 0x0104
	_WM_SYSKEYUP    = 0x0105
	_WM_SYSCHAR     = 0x0106
	_WM_MOUSEMOVE   = 0x0200
	_WM_LBUTTONDOWN = 0x0201
	_WM_LBUTTONUP   = 0x0202
	_WM_RBUTTONDOWN = 0x0204
	_WM_RBUTTONUP   = 0x0205
	_WM_MBUTTONDOWN = 0x0207
	_WM_MBUTTONUP   = 0x0208
	_WM_MOUSEWHEEL  = 0x020A
	_WM_APP         = 0x8000
)

const (
	_WS_OVERLAPPED       = 0x00000000
	_WS_CAPTION          = 0x00C00000
	_WS_SYSMENU          = 0x00080000
	_WS_THICKFRAME       = 0x00040000
	_WS_MINIMIZEBOX      = 0x00020000
	_WS_MAXIMIZEBOX      = 0x00010000
	_WS_VISIBLE          = 0x10000000
	_WS_OVERLAPPEDWINDOW = _WS_OVERLAPPED | _WS_CAPTION | _WS_SYSMENU | _WS_THICKFRAME | _WS_MINIMIZEBOX | _WS_MAXIMIZEBOX
)

const (
	_CS_VREDRAW = 0x0001
	_CS_HREDRAW = 0x0002
	_CS_OWNDC   = 0x0020
)

const (
	_IDI_APPLICATION = 32512
	_IDC_ARROW       = 32512
)

const (
	_CW_USEDEFAULT = 0x80000000 - 0x100000000

	_BI_RGB         = 0
	_DIB_RGB_COLORS = 0
	_SRCCOPY        = 0x00CC0020
	_COLORONCOLOR   = 3

	_ERROR_CLASS_ALREADY_EXISTS = windows.Errno(1410)
)

// Key message lParam bits.
const (
	_KF_ALTDOWN = 1 << 29
	_KF_REPEAT  = 1 << 30
)

func _GET_X_LPARAM(lp uintptr) int32 {
	return int32(int16(_LOWORD(lp)))
}

func _GET_Y_LPARAM(lp uintptr) int32 {
	return int32(int16(_HIWORD(lp)))
}

func _GET_WHEEL_DELTA_WPARAM(wp uintptr) int32 {
	return int32(int16(_HIWORD(wp)))
}

func _LOWORD(l uintptr) uint16 {
	return uint16(uint32(l))
}

func _HIWORD(l uintptr) uint16 {
	return uint16(uint32(l >> 16))
}

//sys	_AdjustWindowRect(rect *_RECT, style uint32, menu bool) (err error) = user32.AdjustWindowRect
//sys	_CreateWindowEx(exstyle uint32, className *uint16, windowText *uint16, style uint32, x int32, y int32, width int32, height int32, parent windows.Handle, menu windows.Handle, hInstance windows.Handle, lpParam uintptr) (hwnd windows.Handle, err error) = user32.CreateWindowExW
//sys	_DefWindowProc(hwnd windows.Handle, uMsg uint32, wParam uintptr, lParam uintptr) (lResult uintptr) = user32.DefWindowProcW
//sys	_DestroyWindow(hwnd windows.Handle) (err error) = user32.DestroyWindow
//sys	_DispatchMessage(msg *_MSG) (ret int32) = user32.DispatchMessageW
//sys	_GetClientRect(hwnd windows.Handle, rect *_RECT) (err error) = user32.GetClientRect
//sys	_GetDC(hwnd windows.Handle) (dc windows.Handle, err error) = user32.GetDC
//sys	_GetMessage(msg *_MSG, hwnd windows.Handle, msgfiltermin uint32, msgfiltermax uint32) (ret int32, err error) [failretval==-1] = user32.GetMessageW
//sys	_LoadCursor(hInstance windows.Handle, cursorName uintptr) (cursor windows.Handle, err error) = user32.LoadCursorW
//sys	_LoadIcon(hInstance windows.Handle, iconName uintptr) (icon windows.Handle, err error) = user32.LoadIconW
//sys	_PostMessage(hwnd windows.Handle, uMsg uint32, wParam uintptr, lParam uintptr) (err error) = user32.PostMessageW
//sys	_PostQuitMessage(exitCode int32) = user32.PostQuitMessage
//sys	_RegisterClass(wc *_WNDCLASS) (atom uint16, err error) = user32.RegisterClassW
//sys	_ReleaseCapture() (err error) = user32.ReleaseCapture
//sys	_ReleaseDC(hwnd windows.Handle, dc windows.Handle) (err error) = user32.ReleaseDC
//sys	_SetCapture(hwnd windows.Handle) (prev windows.Handle) = user32.SetCapture
//sys	_TranslateMessage(msg *_MSG) (done bool) = user32.TranslateMessage
//sys	_UnregisterClass(className *uint16, hInstance windows.Handle) (err error) = user32.UnregisterClassW
//sys	_SetStretchBltMode(dc windows.Handle, mode int32) (prev int32) = gdi32.SetStretchBltMode
//sys	_StretchDIBits(dc windows.Handle, xDest int32, yDest int32, destWidth int32, destHeight int32, xSrc int32, ySrc int32, srcWidth int32, srcHeight int32, bits unsafe.Pointer, bmi *_BITMAPINFO, usage uint32, rop uint32) (lines int32) = gdi32.StretchDIBits
//sys	_GetModuleHandle(moduleName *uint16) (module windows.Handle, err error) = kernel32.GetModuleHandleW
//sys	_QueryPerformanceCounter(counter *int64) (err error) = kernel32.QueryPerformanceCounter
//sys	_QueryPerformanceFrequency(frequency *int64) (err error) = kernel32.QueryPerformanceFrequency
//sys	_timeBeginPeriod(period uint32) (ret uint32) = winmm.timeBeginPeriod
//sys	_timeEndPeriod(period uint32) (ret uint32) = winmm.timeEndPeriod
