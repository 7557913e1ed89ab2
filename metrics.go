// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gx

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/metric"
)

const meterName = "golang.org/x/exp/gx"

// registerMetrics exposes the session counters as observable counters on
// s.mp. Failures are logged and leave the session without metrics.
func (s *Session) registerMetrics() {
	m := s.mp.Meter(meterName)
	dropped, err1 := m.Int64ObservableCounter("gx.events.dropped",
		metric.WithDescription("Input events dropped because the event queue was full."),
		metric.WithUnit("{event}"))
	painted, err2 := m.Int64ObservableCounter("gx.frames.painted",
		metric.WithDescription("Frames blitted to the window."),
		metric.WithUnit("{frame}"))
	skipped, err3 := m.Int64ObservableCounter("gx.frames.skipped",
		metric.WithDescription("Frames skipped because the window was busy, empty or failed to draw."),
		metric.WithUnit("{frame}"))
	if err := errors.Join(err1, err2, err3); err != nil {
		s.log.Warn().Err(err).Msg("creating instruments")
		return
	}
	reg, err := m.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		st := s.Stats()
		o.ObserveInt64(dropped, int64(st.EventsDropped))
		o.ObserveInt64(painted, int64(st.FramesPainted))
		o.ObserveInt64(skipped, int64(st.FramesSkipped))
		return nil
	}, dropped, painted, skipped)
	if err != nil {
		s.log.Warn().Err(err).Msg("registering metrics callback")
		return
	}
	s.reg = reg
}

func (s *Session) unregisterMetrics() {
	if s.reg == nil {
		return
	}
	if err := s.reg.Unregister(); err != nil {
		s.log.Warn().Err(err).Msg("unregistering metrics callback")
	}
	s.reg = nil
}
