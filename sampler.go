// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016 Datadog, Inc.

package tracecore

// SamplingParameters is everything a Sampler is given to make its
// decision: the resolved parent context (invalid if this is a root span),
// the proposed trace id, span id, kind, name and links. AlwaysSample,
// NeverSample and ParentBased in package samplers decide from these inputs
// alone; RateLimited's decision also depends on how many spans it admitted
// recently.
type SamplingParameters struct {
	ParentContext SpanContext
	TraceID       TraceID
	SpanID        SpanID
	Name          string
	Kind          SpanKind
	Links         []Link
}

// SamplingResult is a Sampler's verdict: whether to record the span, plus
// any extra attributes it wants merged into the span (subject to the
// usual attribute cap).
type SamplingResult struct {
	Sampled    bool
	Attributes []KeyValue
}

// Sampler is the pluggable policy collaborator: the core consumes its
// decision but does not define sampling policy. See package samplers for
// the standard implementations shipped alongside this core.
type Sampler interface {
	ShouldSample(p SamplingParameters) SamplingResult
	// Description returns a human-readable identifier, useful in logs and
	// diagnostics.
	Description() string
}
