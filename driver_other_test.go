// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !windows

package gx

import (
	"errors"
	"testing"
)

func TestUnsupportedPlatform(t *testing.T) {
	s := NewSession(nil)
	err := s.Init("test", 64, 48)
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("Init error = %v, want %v", err, ErrUnsupported)
	}
	if got := s.State(); got != Stopped {
		t.Errorf("State = %v, want Stopped", got)
	}
}
