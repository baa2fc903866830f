// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016 Datadog, Inc.

package sdk

import core "github.com/tracecore/tracecore"

// noopSpan satisfies core.Span at zero cost: every mutator discards its
// input. It is returned by the builder whenever sampling rejects a span,
// or whenever the tracer has been stopped, so application code never has
// to branch on whether it got a recording span.
type noopSpan struct {
	sc core.SpanContext
}

// NoopSpan returns a no-op span carrying sc (typically an invalid, root
// SpanContext, but callers that already resolved ids before rejecting a
// span may carry them through for trace-context propagation purposes).
func NoopSpan(sc core.SpanContext) core.Span {
	return noopSpan{sc: sc}
}

func (s noopSpan) Context() core.SpanContext             { return s.sc }
func (noopSpan) IsRecording() bool                        { return false }
func (noopSpan) SetAttribute(string, core.AttributeValue) {}
func (noopSpan) SetAttributes(...core.KeyValue)           {}
func (noopSpan) AddEvent(string, ...core.KeyValue)        {}
func (noopSpan) AddLink(core.Link)                        {}
func (noopSpan) SetStatus(core.StatusCode, string)        {}
func (noopSpan) UpdateName(string)                        {}
func (noopSpan) AddChild()                                {}
func (noopSpan) End()                                     {}
func (noopSpan) Ended() bool                              { return true }
