// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package headless

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"

	"golang.org/x/exp/gx/native"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func open(t *testing.T, d *Driver, w, h int) *Window {
	t.Helper()
	nw, err := d.Open(native.Config{Title: "t", Width: w, Height: h})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return nw.(*Window)
}

func TestInjectAndPump(t *testing.T) {
	d := new(Driver)
	w := open(t, d, 8, 8)

	var got []native.Msg
	result := make(chan bool)
	go func() {
		result <- w.Pump(func(m native.Msg) bool {
			got = append(got, m)
			return m.Kind != native.KindClose
		})
	}()

	msgs := []native.Msg{
		{Kind: native.KindKeyDown, Key: native.VKA},
		{Kind: native.KindResize, X: 20, Y: 10},
		{Kind: native.KindClose},
	}
	for _, m := range msgs {
		if !w.Inject(m) {
			t.Fatalf("Inject(%v) reported a stopped loop", m.Kind)
		}
	}
	if interrupted := <-result; interrupted {
		t.Error("Pump reported an interrupt after a close request")
	}
	if diff := cmp.Diff(msgs, got); diff != "" {
		t.Errorf("handled messages (-want +got):\n%s", diff)
	}
	if gw, gh := w.ClientSize(); gw != 20 || gh != 10 {
		t.Errorf("ClientSize = %dx%d, want 20x10", gw, gh)
	}
	if w.Inject(native.Msg{Kind: native.KindChar, Char: 'x'}) {
		t.Error("Inject after Pump returned reported success")
	}
}

func TestInterrupt(t *testing.T) {
	w := open(t, new(Driver), 8, 8)
	w.Interrupt()
	w.Interrupt()
	if !w.Pump(func(native.Msg) bool { return true }) {
		t.Error("Pump did not report the interrupt")
	}
	<-w.Done()
}

func TestBlit(t *testing.T) {
	w := open(t, new(Driver), 4, 2)
	if w.Frame() != nil {
		t.Error("Frame before any Blit is not nil")
	}
	if err := w.Blit([]uint32{0x102030, 0x405060}, 2, 1, 4, 2); err != nil {
		t.Fatal(err)
	}
	f := w.Frame()
	want := []byte{
		0x10, 0x20, 0x30, 0xff, 0x10, 0x20, 0x30, 0xff, 0x40, 0x50, 0x60, 0xff, 0x40, 0x50, 0x60, 0xff,
		0x10, 0x20, 0x30, 0xff, 0x10, 0x20, 0x30, 0xff, 0x40, 0x50, 0x60, 0xff, 0x40, 0x50, 0x60, 0xff,
	}
	if diff := cmp.Diff(want, f.Pix); diff != "" {
		t.Errorf("frame pixels (-want +got):\n%s", diff)
	}
	if n := w.Frames(); n != 1 {
		t.Errorf("Frames = %d, want 1", n)
	}

	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := w.Blit([]uint32{0}, 1, 1, 4, 2); !errors.Is(err, ErrClosed) {
		t.Errorf("Blit after Close = %v, want %v", err, ErrClosed)
	}
	if w.Frame() == nil {
		t.Error("last frame lost on Close")
	}
	if err := w.Close(); !errors.Is(err, ErrClosed) {
		t.Errorf("second Close = %v, want %v", err, ErrClosed)
	}
}

func TestDriver(t *testing.T) {
	errOpen := errors.New("open failed")
	d := &Driver{OpenErr: errOpen}
	if _, err := d.Open(native.Config{}); !errors.Is(err, errOpen) {
		t.Errorf("Open = %v, want %v", err, errOpen)
	}
	if d.Window() != nil || d.Opened() != 0 {
		t.Errorf("failed Open recorded a window")
	}
	d.OpenErr = nil
	w1 := open(t, d, 1, 1)
	w2 := open(t, d, 2, 2)
	if d.Window() != w2 || d.Window() == w1 || d.Opened() != 2 {
		t.Errorf("Window/Opened do not track the latest window")
	}
}

func TestCloseOnOpen(t *testing.T) {
	w := open(t, &Driver{CloseOnOpen: true}, 8, 8)
	var got []native.Msg
	if w.Pump(func(m native.Msg) bool {
		got = append(got, m)
		return m.Kind != native.KindClose
	}) {
		t.Error("Pump reported an interrupt")
	}
	if diff := cmp.Diff([]native.Msg{{Kind: native.KindClose}}, got); diff != "" {
		t.Errorf("handled messages (-want +got):\n%s", diff)
	}
	if w.Inject(native.Msg{Kind: native.KindChar, Char: 'x'}) {
		t.Error("Inject after Pump returned reported success")
	}
}
