// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package gx

import (
	"golang.org/x/exp/gx/internal/win32"
	"golang.org/x/exp/gx/native"
)

func defaultDriver() native.Driver { return win32.Driver{} }
