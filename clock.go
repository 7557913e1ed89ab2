// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gx

import "time"

// baseline is the zero point of a session's clock. It is never modified
// after creation.
type baseline struct {
	base   int64   // counter value at the zero point
	period float64 // seconds per counter tick
}

func newBaseline() *baseline {
	return &baseline{
		base:   counter(),
		period: 1 / float64(counterFrequency()),
	}
}

// since returns the seconds elapsed since b was taken.
func (b *baseline) since() float64 {
	return float64(counter()-b.base) * b.period
}

// delay sleeps for at least the given number of seconds.
func delay(seconds float64) {
	if seconds > 0 {
		time.Sleep(time.Duration(seconds * float64(time.Second)))
	}
}
