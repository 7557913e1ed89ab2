// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gx

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/time/rate"

	"golang.org/x/exp/gx/internal/ring"
	"golang.org/x/exp/gx/native"
)

// State is the lifecycle stage of a Session.
type State int32

const (
	NotStarted State = iota
	Starting
	Running
	ShuttingDown
	Stopped
)

var stateNames = [...]string{
	NotStarted:   "NotStarted",
	Starting:     "Starting",
	Running:      "Running",
	ShuttingDown: "ShuttingDown",
	Stopped:      "Stopped",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", int32(s))
}

// Options are optional arguments to NewSession.
type Options struct {
	// Driver opens the native window. If nil, the platform driver is used.
	Driver native.Driver

	// Logger receives the session's log output. If nil, the logger set by
	// SetLogger is used.
	Logger *zerolog.Logger

	// MeterProvider receives the session's counters. If nil, the global
	// OpenTelemetry provider is used.
	MeterProvider metric.MeterProvider
}

// Stats are cumulative counters for the lifetime of a Session, across all
// of its Init/Exit cycles.
type Stats struct {
	// EventsDropped counts input events lost because the queue was full.
	EventsDropped uint64
	// FramesPainted counts Paint calls that reached the window.
	FramesPainted uint64
	// FramesSkipped counts Paint calls that were dropped while the session
	// was running.
	FramesSkipped uint64
}

// Window goroutine startup status.
const (
	uiIdle int32 = iota
	uiReady
	uiFailed
	uiStopped // the window opened and has since been torn down
)

// Session is one window and the two goroutines that share it: the
// application goroutine, which calls Init, Poll, Paint and Exit, and the
// window goroutine, which Init starts and which owns the native message
// loop.
//
// A Session may be started again after Exit. Only one goroutine may call
// Session methods, except Now, Delay, State and Stats, which are safe from
// any goroutine.
type Session struct {
	drv  native.Driver
	opts Options
	mp   metric.MeterProvider

	state atomic.Int32
	queue ring.Ring[Event]
	size  packedSize
	clock atomic.Pointer[baseline]

	// mu guards win. The window goroutine holds it while attaching and
	// releasing the window; Paint only ever tries it.
	mu  sync.Mutex
	win native.Window

	ui       atomic.Int32 // uiIdle, uiReady, uiFailed or uiStopped
	startErr error        // written before ui is set to uiFailed
	done     chan struct{}

	painted atomic.Uint64
	skipped atomic.Uint64

	log       zerolog.Logger
	reg       metric.Registration
	dropWarn  rate.Sometimes
	paintWarn rate.Sometimes
}

// NewSession returns a Session in the NotStarted state. A nil opts is
// equivalent to a zero Options.
func NewSession(opts *Options) *Session {
	s := &Session{
		dropWarn:  rate.Sometimes{Interval: time.Second},
		paintWarn: rate.Sometimes{Interval: time.Second},
	}
	if opts != nil {
		s.opts = *opts
	}
	s.drv = s.opts.Driver
	if s.drv == nil {
		s.drv = defaultDriver()
	}
	s.clock.Store(processBaseline)
	return s
}

// processBaseline serves Now before the first Init.
var processBaseline = newBaseline()

// State returns the session's lifecycle stage.
func (s *Session) State() State {
	return State(s.state.Load())
}

// Stats returns the session's counters.
func (s *Session) Stats() Stats {
	return Stats{
		EventsDropped: s.queue.Dropped(),
		FramesPainted: s.painted.Load(),
		FramesSkipped: s.skipped.Load(),
	}
}

// Init opens a window whose client area is width×height pixels and starts
// delivering its events. It returns once the window is usable, which also
// resets the session clock to zero.
//
// Init panics if the session is already started or the size is not
// positive. If the native window cannot be created it returns the error
// and the session stays stopped.
func (s *Session) Init(title string, width, height int) error {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("gx: invalid window size %dx%d", width, height))
	}
	if !s.state.CompareAndSwap(int32(NotStarted), int32(Starting)) &&
		!s.state.CompareAndSwap(int32(Stopped), int32(Starting)) {
		panic("gx: Init called on a " + s.State().String() + " session")
	}

	s.log = s.logger().With().Str("component", "gx").Logger()
	s.mp = s.opts.MeterProvider
	if s.mp == nil {
		s.mp = otel.GetMeterProvider()
	}
	s.queue.Reset()
	s.size.store(0, 0)
	s.startErr = nil
	s.ui.Store(uiIdle)
	s.done = make(chan struct{})

	go s.runWindow(native.Config{Title: title, Width: width, Height: height}, s.done)

	// Window creation takes microseconds to milliseconds; spin rather than
	// park. A window closed as soon as it opened reports uiStopped, and its
	// Quit is already queued.
	for s.ui.Load() == uiIdle {
		runtime.Gosched()
	}
	if s.ui.Load() == uiFailed {
		<-s.done
		err := s.startErr
		s.state.Store(int32(Stopped))
		s.log.Error().Err(err).Msg("window startup failed")
		return err
	}

	s.clock.Store(newBaseline())
	beginTimerPeriod()
	s.registerMetrics()
	s.state.Store(int32(Running))
	w, h := s.size.load()
	s.log.Debug().Str("title", title).Int("width", w).Int("height", h).Msg("session running")
	return nil
}

func (s *Session) logger() *zerolog.Logger {
	if s.opts.Logger != nil {
		return s.opts.Logger
	}
	return loggerPtr.Load()
}

// Exit closes the window and waits for the window goroutine to finish. It
// is a no-op unless the session is running. Exit must not be called from
// the window goroutine.
func (s *Session) Exit() {
	if !s.state.CompareAndSwap(int32(Running), int32(ShuttingDown)) {
		return
	}
	s.mu.Lock()
	w := s.win
	s.mu.Unlock()
	if w != nil {
		w.Interrupt()
	}
	<-s.done

	endTimerPeriod()
	s.unregisterMetrics()
	s.queue.Reset()
	s.state.Store(int32(Stopped))
	s.log.Debug().Msg("session stopped")
}

// Poll returns the oldest pending event. It reports false when there is
// none, or when the session is not running. It never blocks.
func (s *Session) Poll() (Event, bool) {
	if s.State() != Running {
		return Event{}, false
	}
	return s.queue.Read()
}

// Now returns the seconds elapsed since the last successful Init, or since
// the program started if there was none. It never decreases and is not
// affected by changes to the wall clock.
func (s *Session) Now() float64 {
	return s.clock.Load().since()
}

// Delay sleeps for at least the given number of seconds. Non-positive
// values return immediately.
func (s *Session) Delay(seconds float64) {
	delay(seconds)
}

// runWindow is the window goroutine. It stays locked to its OS thread, as
// native windows may only be driven from the thread that created them, and
// exits locked so that the runtime retires the thread with it.
func (s *Session) runWindow(cfg native.Config, done chan<- struct{}) {
	defer close(done)
	runtime.LockOSThread()

	w, err := s.drv.Open(cfg)
	if err != nil {
		s.startErr = fmt.Errorf("gx: failed to open window: %w", err)
		s.ui.Store(uiFailed)
		return
	}
	s.size.store(w.ClientSize())
	s.mu.Lock()
	s.win = w
	s.mu.Unlock()
	s.ui.Store(uiReady)

	if interrupted := w.Pump(s.handle); !interrupted {
		s.post(Event{Kind: Quit})
	}

	s.mu.Lock()
	if err := w.Close(); err != nil {
		s.log.Error().Err(err).Msg("closing window")
	}
	s.win = nil
	s.mu.Unlock()
	s.size.store(0, 0)
	s.ui.Store(uiStopped)
}

// handle is the native.Handler for the session's window.
func (s *Session) handle(m native.Msg) bool {
	width, height := s.size.load()
	t := translate(m, width, height)
	if t.resize {
		s.size.store(t.width, t.height)
	}
	for _, e := range t.events() {
		s.post(e)
	}
	return !t.close
}

// post enqueues e from the window goroutine, dropping it if the application
// has fallen behind.
func (s *Session) post(e Event) {
	if s.queue.Write(e) {
		return
	}
	s.dropWarn.Do(func() {
		s.log.Warn().Stringer("event", e).Uint64("dropped", s.queue.Dropped()).
			Msg("event queue full, dropping events")
	})
}
