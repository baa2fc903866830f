// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016 Datadog, Inc.

// Package tracecore defines the shared types and interfaces of the tracing
// data plane: span identity, span context, span kinds and status, and the
// collaborator interfaces (SpanProcessor, Sampler) that the SDK in package
// sdk consumes but does not define.
package tracecore

import "encoding/hex"

// TraceID is a 16-byte trace identifier. The zero value is invalid.
type TraceID [16]byte

// TraceIDZero is the invalid, all-zero TraceID.
var TraceIDZero TraceID

// IsValid reports whether t is non-zero.
func (t TraceID) IsValid() bool {
	return t != TraceIDZero
}

// String returns the lowercase hex encoding of t.
func (t TraceID) String() string {
	return hex.EncodeToString(t[:])
}

// SpanID is an 8-byte span identifier. The zero value is invalid.
type SpanID [8]byte

// SpanIDZero is the invalid, all-zero SpanID.
var SpanIDZero SpanID

// IsValid reports whether s is non-zero.
func (s SpanID) IsValid() bool {
	return s != SpanIDZero
}

// String returns the lowercase hex encoding of s.
func (s SpanID) String() string {
	return hex.EncodeToString(s[:])
}

// TraceFlags carries per-span flags propagated with the trace context.
// Only the low "sampled" bit is defined by this core.
type TraceFlags byte

// FlagsSampled is set when the span was selected for recording/export.
const FlagsSampled = TraceFlags(1 << 0)

// IsSampled reports whether the sampled bit is set.
func (f TraceFlags) IsSampled() bool {
	return f&FlagsSampled == FlagsSampled
}

// WithSampled returns a copy of f with the sampled bit set to sampled.
func (f TraceFlags) WithSampled(sampled bool) TraceFlags {
	if sampled {
		return f | FlagsSampled
	}
	return f &^ FlagsSampled
}
