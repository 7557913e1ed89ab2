// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ring

import (
	"runtime"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEmpty(t *testing.T) {
	var r Ring[int]
	if v, ok := r.Read(); ok {
		t.Fatalf("Read on empty ring = %d, true", v)
	}
	if !r.Empty() || r.Full() || r.Len() != 0 {
		t.Fatalf("Empty=%t Full=%t Len=%d, want true false 0", r.Empty(), r.Full(), r.Len())
	}
}

func TestFIFO(t *testing.T) {
	var r Ring[int]
	for i := 0; i < 10; i++ {
		if !r.Write(i) {
			t.Fatalf("Write(%d) failed", i)
		}
	}
	var got []int
	for {
		v, ok := r.Read()
		if !ok {
			break
		}
		got = append(got, v)
	}
	want := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("read order mismatch (-want +got):\n%s", diff)
	}
}

func TestCapacity(t *testing.T) {
	var r Ring[int]
	written := 0
	for i := 0; i < 300; i++ {
		if r.Write(i) {
			written++
		}
	}
	if written != Size {
		t.Errorf("accepted %d writes, want %d", written, Size)
	}
	if got := r.Dropped(); got != 300-Size {
		t.Errorf("Dropped = %d, want %d", got, 300-Size)
	}
	if !r.Full() || r.Empty() {
		t.Errorf("Full=%t Empty=%t, want true false", r.Full(), r.Empty())
	}
	for i := 0; i < Size; i++ {
		v, ok := r.Read()
		if !ok || v != i {
			t.Fatalf("Read #%d = %d, %t; want %d, true", i, v, ok, i)
		}
	}
	if _, ok := r.Read(); ok {
		t.Error("Read after draining succeeded")
	}
}

func TestWrapAround(t *testing.T) {
	var r Ring[int]
	next, want := 0, 0
	for round := 0; round < 10; round++ {
		for i := 0; i < 200; i++ {
			if !r.Write(next) {
				t.Fatalf("round %d: Write(%d) failed with Len %d", round, next, r.Len())
			}
			next++
		}
		for i := 0; i < 200; i++ {
			v, ok := r.Read()
			if !ok || v != want {
				t.Fatalf("round %d: Read = %d, %t; want %d, true", round, v, ok, want)
			}
			want++
		}
	}
}

func TestReset(t *testing.T) {
	var r Ring[int]
	for i := 0; i < Size+5; i++ {
		r.Write(i)
	}
	r.Reset()
	if !r.Empty() || r.Dropped() != 5 {
		t.Fatalf("after Reset: Len=%d Dropped=%d, want 0 5", r.Len(), r.Dropped())
	}
	r.Write(42)
	if v, ok := r.Read(); !ok || v != 42 {
		t.Fatalf("Read = %d, %t; want 42, true", v, ok)
	}
}

// TestConcurrentOrder runs a fast producer against a slow consumer. The
// consumer must see an increasing subsequence of the produced values, and
// every value must be either read or counted as dropped.
func TestConcurrentOrder(t *testing.T) {
	const n = 100000
	var (
		r        Ring[int]
		wg       sync.WaitGroup
		accepted int
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			if r.Write(i) {
				accepted++
			}
		}
	}()

	last, read := -1, 0
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
loop:
	for {
		v, ok := r.Read()
		if !ok {
			select {
			case <-done:
				if r.Empty() {
					break loop
				}
			default:
				runtime.Gosched()
			}
			continue
		}
		if v <= last {
			t.Fatalf("value %d read after %d", v, last)
		}
		last = v
		read++
		if read%64 == 0 {
			runtime.Gosched()
		}
	}
	if read != accepted {
		t.Errorf("read %d values, producer had %d accepted", read, accepted)
	}
	if got := uint64(n - accepted); r.Dropped() != got {
		t.Errorf("Dropped = %d, want %d", r.Dropped(), got)
	}
}

func BenchmarkWriteRead(b *testing.B) {
	var r Ring[[4]uint32]
	for i := 0; i < b.N; i++ {
		r.Write([4]uint32{uint32(i)})
		r.Read()
	}
}
