// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gx

import "fmt"

// Paint stretches a width×height image onto the whole client area. Each
// pixel of pix holds 0xRRGGBB in its low 24 bits; rows are top to bottom.
//
// Paint never waits for the window goroutine. If the window is being resized
// or torn down, or is minimized, the frame is skipped. Paint does nothing
// when the session is not running. It panics if pix holds fewer than
// width*height pixels.
func (s *Session) Paint(pix []uint32, width, height int) {
	if width < 0 || height < 0 || len(pix) < width*height {
		panic(fmt.Sprintf("gx: Paint with %d pixels for a %dx%d image", len(pix), width, height))
	}
	if s.State() != Running || width == 0 || height == 0 {
		return
	}
	dw, dh := s.size.load()
	if dw == 0 || dh == 0 || !s.mu.TryLock() {
		s.skipped.Add(1)
		return
	}
	defer s.mu.Unlock()

	if s.win == nil {
		s.skipped.Add(1)
		return
	}
	if err := s.win.Blit(pix[:width*height], width, height, dw, dh); err != nil {
		s.skipped.Add(1)
		s.paintWarn.Do(func() {
			s.log.Error().Err(err).Int("width", width).Int("height", height).
				Int("client_width", dw).Int("client_height", dh).Msg("blit failed")
		})
		return
	}
	s.painted.Add(1)
}
