// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !windows

package gx

import (
	"fmt"
	"runtime"

	"golang.org/x/exp/gx/native"
)

func defaultDriver() native.Driver { return errDriver{} }

// errDriver is the default driver on platforms without a native backend.
type errDriver struct{}

func (errDriver) Open(native.Config) (native.Window, error) {
	return nil, fmt.Errorf("%w: GOOS/GOARCH %s/%s", ErrUnsupported, runtime.GOOS, runtime.GOARCH)
}
