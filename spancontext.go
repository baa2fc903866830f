// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016 Datadog, Inc.

package tracecore

// SpanContext is the immutable identity propagated with a span: trace id,
// span id, trace flags and tracestate. Equal compares the trace id and
// span id only.
type SpanContext struct {
	traceID    TraceID
	spanID     SpanID
	traceFlags TraceFlags
	tracestate Tracestate
}

// NewSpanContext builds a SpanContext from its components.
func NewSpanContext(traceID TraceID, spanID SpanID, flags TraceFlags, ts Tracestate) SpanContext {
	return SpanContext{traceID: traceID, spanID: spanID, traceFlags: flags, tracestate: ts}
}

// TraceID returns the trace id.
func (c SpanContext) TraceID() TraceID { return c.traceID }

// SpanID returns the span id.
func (c SpanContext) SpanID() SpanID { return c.spanID }

// TraceFlags returns the trace flags.
func (c SpanContext) TraceFlags() TraceFlags { return c.traceFlags }

// Tracestate returns the tracestate.
func (c SpanContext) Tracestate() Tracestate { return c.tracestate }

// IsSampled reports whether the sampled flag is set.
func (c SpanContext) IsSampled() bool { return c.traceFlags.IsSampled() }

// IsValid reports whether both the trace id and span id are non-zero.
func (c SpanContext) IsValid() bool {
	return c.traceID.IsValid() && c.spanID.IsValid()
}

// WithTraceFlags returns a copy of c with its trace flags replaced.
func (c SpanContext) WithTraceFlags(flags TraceFlags) SpanContext {
	c.traceFlags = flags
	return c
}

// WithTracestate returns a copy of c with its tracestate replaced.
func (c SpanContext) WithTracestate(ts Tracestate) SpanContext {
	c.tracestate = ts
	return c
}

// Equal reports whether c and other have the same trace id and span id.
// Trace flags and tracestate are not compared.
func (c SpanContext) Equal(other SpanContext) bool {
	return c.traceID == other.traceID && c.spanID == other.spanID
}
