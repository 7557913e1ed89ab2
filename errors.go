// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gx

import "errors"

// ErrUnsupported is returned by Init when no native backend exists for the
// platform and no Options.Driver is given.
var ErrUnsupported = errors.New("gx: unsupported platform")
