// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016 Datadog, Inc.

package sdk

import (
	"context"
	"sync"
	"sync/atomic"

	core "github.com/tracecore/tracecore"
	"github.com/tracecore/tracecore/internal/log"
)

// Tracer is the façade application code interacts with: it builds spans,
// tracks the ambient current span, and owns the active SpanProcessor
// fan-out and TraceConfig. Both are published via atomic.Pointer so a
// concurrent builder reads either the pre- or post-update snapshot,
// never a torn one.
type Tracer struct {
	clock       Clock
	idGenerator IDGenerator
	resource    core.Resource
	ctxSlot     ContextSlot

	activeConfig    atomic.Pointer[TraceConfig]
	activeProcessor atomic.Pointer[core.MultiProcessor]

	mu                   sync.Mutex
	registeredProcessors []core.SpanProcessor

	stopped atomic.Bool
}

var _ SpanBuilderTracer = (*Tracer)(nil)

func (t *Tracer) clockFor() Clock             { return t.clock }
func (t *Tracer) idGeneratorFor() IDGenerator { return t.idGenerator }
func (t *Tracer) resourceFor() core.Resource  { return t.resource }
func (t *Tracer) contextSlotFor() ContextSlot { return t.ctxSlot }
func (t *Tracer) stoppedFor() bool            { return t.stopped.Load() }

// NewTracer builds a Tracer. Defaults: SystemClock, a crypto/rand id
// generator, DefaultResource, DefaultContextSlot, and a default
// NewTraceConfig with no registered processors.
func NewTracer(opts ...TracerOption) *Tracer {
	t := &Tracer{
		clock:       SystemClock,
		idGenerator: NewRandomIDGenerator(),
		resource:    DefaultResource(),
		ctxSlot:     DefaultContextSlot,
	}
	t.activeConfig.Store(NewTraceConfig())
	t.activeProcessor.Store(core.NewMultiProcessor())
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SpanBuilder returns a new SpanBuilder for name, bound to the Tracer's
// current TraceConfig and processor snapshot.
func (t *Tracer) SpanBuilder(name string) *SpanBuilder {
	return newSpanBuilder(t, name, t.activeProcessor.Load(), t.activeConfig.Load())
}

// Stopped reports whether Shutdown has already been called. SpanBuilder.Start
// checks this and returns a no-op span rather than erroring, since a
// shutdown race during an in-flight request should never surface as an
// application-visible failure.
func (t *Tracer) Stopped() bool {
	return t.stopped.Load()
}

// CurrentSpan returns the span stored in ctx by a prior WithSpan call, or
// nil if none.
func (t *Tracer) CurrentSpan(ctx context.Context) core.Span {
	return t.ctxSlot.Current(ctx)
}

// WithSpan returns a derived context.Context carrying span as current,
// plus a Scope whose Release returns ctx, the context in effect before
// this call — mirroring the span-stack push/pop the core specifies while
// respecting context.Context's own immutability.
func (t *Tracer) WithSpan(ctx context.Context, span core.Span) (context.Context, Scope) {
	return t.ctxSlot.WithSpan(ctx, span), Scope{prior: ctx}
}

// AddSpanProcessor registers p, rebuilding and atomically republishing the
// MultiProcessor fan-out. Registration order is preserved; a processor
// added after spans are already in flight only observes spans started
// after this call returns.
func (t *Tracer) AddSpanProcessor(p core.SpanProcessor) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.registeredProcessors = append(t.registeredProcessors, p)
	t.activeProcessor.Store(core.NewMultiProcessor(t.registeredProcessors...))
}

// UpdateActiveTraceConfig atomically swaps the active TraceConfig. Builders
// already holding the prior snapshot are unaffected; only subsequent
// SpanBuilder calls observe cfg.
func (t *Tracer) UpdateActiveTraceConfig(cfg *TraceConfig) {
	t.activeConfig.Store(cfg)
}

// ActiveTraceConfig returns the currently active TraceConfig.
func (t *Tracer) ActiveTraceConfig() *TraceConfig {
	return t.activeConfig.Load()
}

// Shutdown stops the tracer and forwards Shutdown to every registered
// processor, once. A second call is a no-op, logged as a warning per
// spec: processors commonly release non-reentrant resources (file
// handles, connections) in Shutdown and must never see it twice.
func (t *Tracer) Shutdown() {
	if !t.stopped.CompareAndSwap(false, true) {
		log.Warn("Shutdown called more than once on tracer: ignored")
		return
	}
	t.activeProcessor.Load().Shutdown()
}
