// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ring provides a fixed-capacity single-producer, single-consumer
// ring buffer.
package ring

import "sync/atomic"

// Size is the number of slots in a Ring. It must be a power of 2.
const Size = 256

const mask = Size - 1

// Ring is a bounded FIFO that one goroutine writes and one other goroutine
// reads, without locks. Write never blocks: when the ring is full the value
// is dropped and counted.
//
// head and tail are free-running counters, so all Size slots are usable and
// tail-head is the number of buffered values. A slot is written before tail
// publishes it and read before head releases it.
//
// The zero value is an empty Ring ready to use.
type Ring[T any] struct {
	head atomic.Uint32 // next slot to read; written by the consumer
	_    [60]byte
	tail atomic.Uint32 // next slot to write; written by the producer
	_    [60]byte

	dropped atomic.Uint64
	buf     [Size]T
}

// Write appends v. It reports false, dropping v, if the ring is full. Only
// the producer may call Write.
func (r *Ring[T]) Write(v T) bool {
	tail := r.tail.Load()
	if tail-r.head.Load() == Size {
		r.dropped.Add(1)
		return false
	}
	r.buf[tail&mask] = v
	r.tail.Store(tail + 1)
	return true
}

// Read removes and returns the oldest value. It reports false if the ring is
// empty. Only the consumer may call Read.
func (r *Ring[T]) Read() (v T, ok bool) {
	head := r.head.Load()
	if head == r.tail.Load() {
		return v, false
	}
	v = r.buf[head&mask]
	var zero T
	r.buf[head&mask] = zero
	r.head.Store(head + 1)
	return v, true
}

// Len returns the number of buffered values. The result is exact only when
// called from the producer or the consumer with the other side idle.
func (r *Ring[T]) Len() int {
	return int(r.tail.Load() - r.head.Load())
}

// Empty reports whether the ring holds no values.
func (r *Ring[T]) Empty() bool { return r.Len() == 0 }

// Full reports whether a Write would drop its value.
func (r *Ring[T]) Full() bool { return r.Len() == Size }

// Dropped returns the number of values Write has dropped over the life of
// the ring. Reset does not clear it.
func (r *Ring[T]) Dropped() uint64 { return r.dropped.Load() }

// Reset empties the ring. Neither the producer nor the consumer may be
// active while Reset runs.
func (r *Ring[T]) Reset() {
	clear(r.buf[:])
	r.head.Store(0)
	r.tail.Store(0)
}
