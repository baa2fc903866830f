// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016 Datadog, Inc.

// Package sdk implements the span lifecycle engine: SpanBuilder,
// RecordingSpan, the SpanProcessor fan-out, and the Tracer façade that
// wires them together, per the tracecore core specification.
package sdk

import "time"

// Clock is a monotonic nanosecond source plus a wall-clock anchor. The
// default implementation wraps time.Now(); tests inject a fake one to get
// deterministic, steppable timestamps.
type Clock interface {
	// NowNanos returns a monotonically non-decreasing reading in
	// nanoseconds, suitable only for ordering and duration math — not a
	// wall-clock timestamp on its own.
	NowNanos() int64
	// WallNow returns the current wall-clock time, used to anchor a
	// TimestampConverter.
	WallNow() time.Time
}

type systemClock struct {
	epoch time.Time
}

// SystemClock is the default Clock, backed by the Go runtime's monotonic
// and wall clocks. NowNanos is derived from time.Since against a fixed
// epoch so it reflects the runtime's monotonic reading rather than the
// (potentially NTP-adjusted) wall clock.
var SystemClock Clock = systemClock{epoch: time.Now()}

func (c systemClock) NowNanos() int64 {
	return int64(time.Since(c.epoch))
}

func (systemClock) WallNow() time.Time {
	return time.Now()
}
