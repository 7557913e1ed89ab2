// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore

// This build tag means that "go install golang.org/x/exp/gx/..." doesn't
// install this example program. Use "go run main.go" to run it.

// Plasma draws an animated plasma effect that follows the mouse. Escape or
// closing the window quits; the space bar restarts the window.
package main

import (
	"math"
	"os"

	"github.com/rs/zerolog"

	"golang.org/x/exp/gx"
)

const width, height = 320, 200

func main() {
	gx.SetLogger(zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.DebugLevel).With().Timestamp().Logger())

	pix := make([]uint32, width*height)
	gx.Init("plasma", width, height)
	defer gx.Exit()

	var mx, my float32 = 0.5, 0.5
	for {
		for {
			e, ok := gx.Poll()
			if !ok {
				break
			}
			switch e.Kind {
			case gx.Quit:
				return
			case gx.KeyDown:
				switch e.Key {
				case gx.KeyEscape:
					return
				case gx.KeySpace:
					gx.Exit()
					gx.Init("plasma", width, height)
				}
			case gx.MouseMove:
				mx, my = e.X, e.Y
			}
		}
		draw(pix, gx.Now(), float64(mx), float64(my))
		gx.Paint(pix, width, height)
		gx.Delay(1.0 / 120)
	}
}

func draw(pix []uint32, t, mx, my float64) {
	for y := 0; y < height; y++ {
		fy := float64(y) / height
		for x := 0; x < width; x++ {
			fx := float64(x) / width
			v := math.Sin(fx*10+t) +
				math.Sin((fy*10+t)/2) +
				math.Sin(math.Hypot(fx-mx, fy-my)*20-t*2)
			r := uint32(128 + 127*math.Sin(v*math.Pi))
			g := uint32(128 + 127*math.Sin(v*math.Pi+2*math.Pi/3))
			b := uint32(128 + 127*math.Sin(v*math.Pi+4*math.Pi/3))
			pix[y*width+x] = r<<16 | g<<8 | b
		}
	}
}
