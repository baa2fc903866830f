// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016 Datadog, Inc.

package tracecore

// Span is the mutation surface available to application code, satisfied
// both by a live RecordingSpan and by the zero-cost no-op span returned
// when sampling rejects a span. Every mutator is total: it never panics
// and never returns an error to the caller.
type Span interface {
	// Context returns the span's identity. Always valid for a recording
	// span. A no-op span returned because sampling rejected the span
	// carries the ids the builder allocated, with the sampled flag clear;
	// one returned for a stopped tracer or an invalid name carries an
	// invalid, zero SpanContext.
	Context() SpanContext

	// IsRecording reports whether mutations are retained.
	IsRecording() bool

	// SetAttribute sets or updates a single attribute.
	SetAttribute(key string, value AttributeValue)

	// SetAttributes sets or updates several attributes at once.
	SetAttributes(kvs ...KeyValue)

	// AddEvent appends a timestamped event.
	AddEvent(name string, attrs ...KeyValue)

	// AddLink appends a link to another SpanContext.
	AddLink(link Link)

	// SetStatus replaces the span's status.
	SetStatus(code StatusCode, description string)

	// UpdateName replaces the span's name.
	UpdateName(name string)

	// AddChild records that a child span was started under this span.
	AddChild()

	// End terminates the span. Idempotent: calls after the first are
	// silent no-ops.
	End()

	// Ended reports whether End has already been called.
	Ended() bool
}
