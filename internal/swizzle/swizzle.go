// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package swizzle converts packed 32-bit pixels to Go's RGBA byte order.
package swizzle

// RGBA converts src, whose pixels hold 0xRRGGBB in their low 24 bits, to
// opaque RGBA bytes in dst. The high byte of each source pixel is ignored.
//
// It panics if dst is shorter than 4*len(src).
func RGBA(dst []byte, src []uint32) {
	if len(dst) < 4*len(src) {
		panic("swizzle: destination slice too short")
	}
	dst = dst[:4*len(src)]
	for i, p := range src {
		d := dst[4*i : 4*i+4 : 4*i+4]
		d[0] = byte(p >> 16)
		d[1] = byte(p >> 8)
		d[2] = byte(p)
		d[3] = 0xff
	}
}
