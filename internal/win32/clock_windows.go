// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package win32

// PerformanceCounter returns the current value of the high-resolution
// performance counter.
func PerformanceCounter() int64 {
	var c int64
	// Cannot fail on Windows XP and later.
	_QueryPerformanceCounter(&c)
	return c
}

// PerformanceFrequency returns the performance counter frequency in ticks per
// second. It is fixed at boot.
func PerformanceFrequency() int64 {
	var f int64
	_QueryPerformanceFrequency(&f)
	return f
}

// BeginTimerPeriod requests a minimum timer resolution of ms milliseconds
// for sleeps. Each call must be matched by EndTimerPeriod.
func BeginTimerPeriod(ms uint32) { _timeBeginPeriod(ms) }

// EndTimerPeriod clears a resolution requested by BeginTimerPeriod.
func EndTimerPeriod(ms uint32) { _timeEndPeriod(ms) }
