// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package native

// Virtual-key codes carried in Msg.Key. The values are the Win32 VK_ codes;
// ASCII digits and uppercase letters are their own codes.
const (
	VKBack    = 0x08
	VKTab     = 0x09
	VKReturn  = 0x0D
	VKShift   = 0x10
	VKControl = 0x11
	VKMenu    = 0x12 // Alt
	VKEscape  = 0x1B
	VKSpace   = 0x20
	VKPrior   = 0x21 // Page Up
	VKNext    = 0x22 // Page Down
	VKEnd     = 0x23
	VKHome    = 0x24
	VKLeft    = 0x25
	VKUp      = 0x26
	VKRight   = 0x27
	VKDown    = 0x28
	VKInsert  = 0x2D
	VKDelete  = 0x2E
	VK0       = 0x30
	VK9       = 0x39
	VKA       = 0x41
	VKZ       = 0x5A
	VKF1      = 0x70
	VKF4      = 0x73
	VKF12     = 0x7B
)
