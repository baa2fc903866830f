// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016 Datadog, Inc.

package sdk

import (
	"context"
	"runtime"

	core "github.com/tracecore/tracecore"
	"github.com/tracecore/tracecore/internal/log"
)

// SpanBuilder accumulates a new span's configuration before Start commits
// it. A builder is bound, at creation time, to a snapshot of its Tracer's
// active SpanProcessor and TraceConfig — a config rotation concurrent with
// one in-flight builder never splits that span across two configs.
type SpanBuilder struct {
	tracer SpanBuilderTracer
	name   string

	noParent   bool
	parentCtx  *core.SpanContext
	parentSpan core.Span
	withCtx    context.Context

	kind  core.SpanKind
	attrs []core.KeyValue
	links []core.Link

	startNanos *int64
	sampler    core.Sampler

	processor   core.SpanProcessor
	traceConfig *TraceConfig
}

// SpanBuilderTracer is the subset of Tracer a SpanBuilder needs: its clock,
// id generator, resource and ambient context slot. Declared as an
// interface so span_builder.go can be tested without constructing a full
// Tracer.
type SpanBuilderTracer interface {
	clockFor() Clock
	idGeneratorFor() IDGenerator
	resourceFor() core.Resource
	contextSlotFor() ContextSlot
	stoppedFor() bool
}

func newSpanBuilder(tracer SpanBuilderTracer, name string, processor core.SpanProcessor, cfg *TraceConfig) *SpanBuilder {
	return &SpanBuilder{
		tracer:      tracer,
		name:        name,
		processor:   processor,
		traceConfig: cfg,
	}
}

// WithParent sets an explicit parent SpanContext, overriding any ambient
// lookup. Passing an invalid SpanContext is equivalent to WithNoParent.
func (b *SpanBuilder) WithParent(sc core.SpanContext) *SpanBuilder {
	b.parentCtx = &sc
	b.parentSpan = nil
	return b
}

// WithParentSpan sets an explicit parent Span. If it is a locally recording
// span, the new span shares its TimestampConverter and increments its
// child count.
func (b *SpanBuilder) WithParentSpan(s core.Span) *SpanBuilder {
	b.parentSpan = s
	b.parentCtx = nil
	return b
}

// WithNoParent forces the new span to be a root, ignoring any explicit or
// ambient parent.
func (b *SpanBuilder) WithNoParent() *SpanBuilder {
	b.noParent = true
	return b
}

// WithContext resolves the ambient current span from ctx, via the tracer's
// ContextSlot, when neither WithParent nor WithParentSpan was called.
func (b *SpanBuilder) WithContext(ctx context.Context) *SpanBuilder {
	b.withCtx = ctx
	return b
}

// WithKind sets the span kind. Default is core.KindInternal.
func (b *SpanBuilder) WithKind(k core.SpanKind) *SpanBuilder {
	b.kind = k
	return b
}

// WithAttributes adds initial attributes, merged before sampler-contributed
// attributes, subject to the configured cap.
func (b *SpanBuilder) WithAttributes(kvs ...core.KeyValue) *SpanBuilder {
	b.attrs = append(b.attrs, kvs...)
	return b
}

// WithLinks adds initial links, subject to the configured cap.
func (b *SpanBuilder) WithLinks(links ...core.Link) *SpanBuilder {
	b.links = append(b.links, links...)
	return b
}

// WithTimestamp overrides the span's start time with an explicit monotonic
// reading (as returned by a Clock), rather than sampling the clock at
// Start().
func (b *SpanBuilder) WithTimestamp(monoNanos int64) *SpanBuilder {
	b.startNanos = &monoNanos
	return b
}

// WithSampler overrides the TraceConfig's sampler for this span only.
func (b *SpanBuilder) WithSampler(s core.Sampler) *SpanBuilder {
	b.sampler = s
	return b
}

// Start commits the builder: resolves the parent, allocates ids, runs the
// sampler, and — if sampled — constructs and registers a RecordingSpan.
// An invalid name (empty, non-ASCII, or over 255 bytes) is rejected with
// ErrInvalidName. Building on a stopped tracer is not an error: it
// silently returns a no-op span, per spec.
func (b *SpanBuilder) Start() (core.Span, error) {
	if err := validateName(b.name); err != nil {
		return NoopSpan(core.SpanContext{}), err
	}

	tracer := b.tracer
	if tracer.stoppedFor() {
		return NoopSpan(core.SpanContext{}), nil
	}
	parentContext, localParent := b.resolveParent(tracer)
	isRoot := b.noParent || !parentContext.IsValid()

	idGen := tracer.idGeneratorFor()
	spanID := idGen.NewSpanID()
	var traceID core.TraceID
	var tracestate core.Tracestate
	if isRoot {
		traceID = idGen.NewTraceID()
	} else {
		traceID = parentContext.TraceID()
		tracestate = parentContext.Tracestate()
	}

	sampler := b.sampler
	if sampler == nil {
		sampler = b.traceConfig.Sampler()
	}
	params := core.SamplingParameters{
		Name:    b.name,
		Kind:    b.kind,
		Links:   b.links,
		TraceID: traceID,
		SpanID:  spanID,
	}
	if !isRoot {
		params.ParentContext = parentContext
	}
	result := sampler.ShouldSample(params)

	flags := core.TraceFlags(0).WithSampled(result.Sampled)
	spanContext := core.NewSpanContext(traceID, spanID, flags, tracestate)

	if !result.Sampled {
		return NoopSpan(spanContext), nil
	}

	var parentSpanID core.SpanID
	if !isRoot {
		parentSpanID = parentContext.SpanID()
	}

	var tsConverter *TimestampConverter
	if localParent != nil {
		tsConverter = localParent.tsConverter
	} else {
		tsConverter = NewTimestampConverter(tracer.clockFor())
	}

	startNanos := tracer.clockFor().NowNanos()
	if b.startNanos != nil {
		startNanos = *b.startNanos
	}

	span := &RecordingSpan{
		context:      spanContext,
		parentSpanID: parentSpanID,
		isRoot:       isRoot,
		kind:         b.kind,
		clock:        tracer.clockFor(),
		tsConverter:  tsConverter,
		traceConfig:  b.traceConfig,
		resource:     tracer.resourceFor(),
		processor:    b.processor,
		startNanos:   startNanos,
		name:         b.name,
	}
	if len(b.attrs) > 0 || len(result.Attributes) > 0 {
		span.attrs().PutAll(b.attrs...)
		span.attrs().PutAll(result.Attributes...)
	}
	if len(b.links) > 0 {
		for _, l := range b.links {
			span.lks().Push(l)
		}
	}

	runtime.SetFinalizer(span, finalizeUnendedSpan)

	if localParent != nil {
		localParent.AddChild()
	}
	if b.processor != nil {
		b.processor.OnStart(span)
	}

	return span, nil
}

// resolveParent determines the effective parent SpanContext and, if the
// parent is a live local RecordingSpan, returns it too so Start can share
// its TimestampConverter and bump its child count.
func (b *SpanBuilder) resolveParent(tracer SpanBuilderTracer) (core.SpanContext, *RecordingSpan) {
	if b.noParent {
		return core.SpanContext{}, nil
	}
	if b.parentCtx != nil {
		return *b.parentCtx, nil
	}
	if b.parentSpan != nil {
		if rs, ok := b.parentSpan.(*RecordingSpan); ok {
			return rs.Context(), rs
		}
		return b.parentSpan.Context(), nil
	}
	if b.withCtx != nil {
		if cur := tracer.contextSlotFor().Current(b.withCtx); cur != nil {
			if rs, ok := cur.(*RecordingSpan); ok {
				return rs.Context(), rs
			}
			return cur.Context(), nil
		}
	}
	return core.SpanContext{}, nil
}

// finalizeUnendedSpan runs when the garbage collector reclaims a
// RecordingSpan that was never ended: it is a leak in the caller's code
// (a missing span.End()), severe enough to log unconditionally.
func finalizeUnendedSpan(s *RecordingSpan) {
	if !s.Ended() {
		log.Error("span %s (%s) garbage collected without End() being called", s.context.SpanID(), s.name)
	}
}
