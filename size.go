// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gx

import "sync/atomic"

// packedSize holds a client size as one 64-bit word, width in the high half,
// so a reader never pairs the width of one update with the height of
// another.
type packedSize struct {
	v atomic.Uint64
}

func (p *packedSize) store(width, height int) {
	p.v.Store(uint64(uint32(width))<<32 | uint64(uint32(height)))
}

func (p *packedSize) load() (width, height int) {
	v := p.v.Load()
	return int(uint32(v >> 32)), int(uint32(v))
}
