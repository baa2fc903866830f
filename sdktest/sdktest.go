// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016 Datadog, Inc.

// Package sdktest provides an in-memory SpanProcessor for assertions in
// downstream tests, the role the teacher's ddtrace/mocktracer plays for
// its own test suite.
package sdktest

import (
	"sync"

	core "github.com/tracecore/tracecore"
	"github.com/tracecore/tracecore/sdk"
)

// SpanRecorder is a SpanProcessor that buffers a Snapshot of every span at
// OnStart and again at OnEnd, so tests can assert on both in-flight and
// finished spans without racing the recording path.
type SpanRecorder struct {
	mu       sync.Mutex
	started  []sdk.Snapshot
	finished []sdk.Snapshot
	shutdown bool
}

// NewSpanRecorder builds an empty SpanRecorder.
func NewSpanRecorder() *SpanRecorder {
	return &SpanRecorder{}
}

var _ core.SpanProcessor = (*SpanRecorder)(nil)

// OnStart implements core.SpanProcessor. Spans that are not a
// *sdk.RecordingSpan (a foreign ReadOnlySpan implementation) are ignored:
// SpanRecorder only snapshots this SDK's own recording spans.
func (r *SpanRecorder) OnStart(span core.ReadOnlySpan) {
	rs, ok := span.(*sdk.RecordingSpan)
	if !ok {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started = append(r.started, rs.Snapshot())
}

// OnEnd implements core.SpanProcessor.
func (r *SpanRecorder) OnEnd(span core.ReadOnlySpan) {
	rs, ok := span.(*sdk.RecordingSpan)
	if !ok {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finished = append(r.finished, rs.Snapshot())
}

// Shutdown implements core.SpanProcessor, marking the recorder as shut
// down; it otherwise performs no cleanup since nothing here holds external
// resources.
func (r *SpanRecorder) Shutdown() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shutdown = true
}

// StartedSpans returns a copy of every span snapshot captured at OnStart,
// in start order.
func (r *SpanRecorder) StartedSpans() []sdk.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]sdk.Snapshot, len(r.started))
	copy(out, r.started)
	return out
}

// FinishedSpans returns a copy of every span snapshot captured at OnEnd, in
// end order.
func (r *SpanRecorder) FinishedSpans() []sdk.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]sdk.Snapshot, len(r.finished))
	copy(out, r.finished)
	return out
}

// ShutdownCalled reports whether Shutdown has been invoked.
func (r *SpanRecorder) ShutdownCalled() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.shutdown
}

// Reset clears all buffered spans without affecting the shutdown flag.
func (r *SpanRecorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started = nil
	r.finished = nil
}
