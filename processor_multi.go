// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016 Datadog, Inc.

package tracecore

import "github.com/tracecore/tracecore/internal/log"

// MultiProcessor forwards OnStart/OnEnd/Shutdown to an ordered list of
// processors, in registration order, recovering and logging any panic so
// a misbehaving processor can never propagate onto the recording path.
// It is itself a SpanProcessor and is the value the Tracer atomically
// swaps in whenever the registered processor list changes (see
// package sdk's copy-on-publish composite).
type MultiProcessor struct {
	processors []SpanProcessor
}

// NewMultiProcessor builds a MultiProcessor over ps, in order.
func NewMultiProcessor(ps ...SpanProcessor) *MultiProcessor {
	cp := make([]SpanProcessor, len(ps))
	copy(cp, ps)
	return &MultiProcessor{processors: cp}
}

// OnStart implements SpanProcessor.
func (m *MultiProcessor) OnStart(span ReadOnlySpan) {
	for _, p := range m.processors {
		safeInvoke("OnStart", p, func() { p.OnStart(span) })
	}
}

// OnEnd implements SpanProcessor.
func (m *MultiProcessor) OnEnd(span ReadOnlySpan) {
	for _, p := range m.processors {
		safeInvoke("OnEnd", p, func() { p.OnEnd(span) })
	}
}

// Shutdown implements SpanProcessor.
func (m *MultiProcessor) Shutdown() {
	for _, p := range m.processors {
		safeInvoke("Shutdown", p, p.Shutdown)
	}
}

func safeInvoke(op string, _ SpanProcessor, f func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("span processor panicked during %s: %v", op, r)
		}
	}()
	f()
}
