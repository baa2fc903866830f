// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016 Datadog, Inc.

package sdk

import core "github.com/tracecore/tracecore"

// TracerOption configures a Tracer at construction, per the functional
// options pattern used throughout this SDK.
type TracerOption func(*Tracer)

// WithClock overrides the default SystemClock, primarily for tests that
// need deterministic, steppable timestamps.
func WithClock(c Clock) TracerOption {
	return func(t *Tracer) { t.clock = c }
}

// WithIDGenerator overrides the default crypto/rand-backed IDGenerator.
func WithIDGenerator(g IDGenerator) TracerOption {
	return func(t *Tracer) { t.idGenerator = g }
}

// WithResource overrides the default process-identity Resource.
func WithResource(r core.Resource) TracerOption {
	return func(t *Tracer) { t.resource = r }
}

// WithContextSlot overrides the default context.Context-backed ContextSlot.
func WithContextSlot(s ContextSlot) TracerOption {
	return func(t *Tracer) { t.ctxSlot = s }
}

// WithInitialTraceConfig overrides the default TraceConfig a Tracer starts
// with.
func WithInitialTraceConfig(cfg *TraceConfig) TracerOption {
	return func(t *Tracer) { t.activeConfig.Store(cfg) }
}

// WithInitialSpanProcessors registers ps as the Tracer's initial processor
// set, equivalent to calling AddSpanProcessor for each in order.
func WithInitialSpanProcessors(ps ...core.SpanProcessor) TracerOption {
	return func(t *Tracer) {
		t.registeredProcessors = append(t.registeredProcessors, ps...)
		t.activeProcessor.Store(core.NewMultiProcessor(t.registeredProcessors...))
	}
}
