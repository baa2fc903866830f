// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016 Datadog, Inc.

// Package oteltrace adapts an *sdk.Tracer to go.opentelemetry.io/otel/trace,
// so application code instrumented against the OpenTelemetry API can run
// against this core unmodified — the role the teacher's
// ddtrace/opentelemetry package plays for DataDog's own tracer.
package oteltrace

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	otel "go.opentelemetry.io/otel/trace"

	core "github.com/tracecore/tracecore"
	"github.com/tracecore/tracecore/sdk"
)

// Provider adapts an *sdk.Tracer to otel.TracerProvider. Every Tracer call
// returns a new wrapper around the same underlying *sdk.Tracer regardless
// of name/version, since this core has no concept of named tracer
// instances.
type Provider struct {
	tracer *sdk.Tracer
}

// NewProvider wraps tracer as an otel.TracerProvider.
func NewProvider(tracer *sdk.Tracer) *Provider {
	return &Provider{tracer: tracer}
}

var _ otel.TracerProvider = (*Provider)(nil)

// Tracer implements otel.TracerProvider. name/opts are accepted for API
// compatibility and otherwise ignored.
func (p *Provider) Tracer(string, ...otel.TracerOption) otel.Tracer {
	return &Tracer{tracer: p.tracer}
}

// Tracer adapts *sdk.Tracer to otel.Tracer.
type Tracer struct {
	tracer *sdk.Tracer
}

var _ otel.Tracer = (*Tracer)(nil)

// Start implements otel.Tracer: it builds and starts a span via the
// wrapped sdk.Tracer, using ctx to resolve the ambient parent, then
// returns a context carrying the new span as current alongside the
// adapted otel.Span.
func (t *Tracer) Start(ctx context.Context, spanName string, opts ...otel.SpanStartOption) (context.Context, otel.Span) {
	cfg := otel.NewSpanStartConfig(opts...)

	b := t.tracer.SpanBuilder(spanName).
		WithContext(ctx).
		WithKind(fromOTelKind(cfg.SpanKind())).
		WithAttributes(fromOTelAttributes(cfg.Attributes())...)

	if sc := otel.SpanContextFromContext(ctx); sc.IsValid() {
		b = b.WithParent(toCoreContext(sc))
	}
	for _, l := range cfg.Links() {
		b = b.WithLinks(core.Link{
			Context:    toCoreContext(l.SpanContext),
			Attributes: fromOTelAttributes(l.Attributes),
		})
	}

	span, err := b.Start()
	if err != nil {
		span = sdk.NoopSpan(core.SpanContext{})
	}

	adapted := &Span{span: span, provider: &Provider{tracer: t.tracer}}
	scoped, scope := t.tracer.WithSpan(ctx, span)
	adapted.release = scope.Release
	return otel.ContextWithSpan(scoped, adapted), adapted
}

// Span adapts a core.Span to otel.Span.
type Span struct {
	span     core.Span
	provider *Provider
	release  func() context.Context
}

var _ otel.Span = (*Span)(nil)

// End implements otel.Span. options are accepted for API compatibility
// (this core has no explicit-end-timestamp override on an already-built
// span) and otherwise ignored.
func (s *Span) End(...otel.SpanEndOption) {
	s.span.End()
}

// AddEvent implements otel.Span.
func (s *Span) AddEvent(name string, opts ...otel.EventOption) {
	cfg := otel.NewEventConfig(opts...)
	s.span.AddEvent(name, fromOTelAttributes(cfg.Attributes())...)
}

// AddLink implements otel.Span.
func (s *Span) AddLink(link otel.Link) {
	s.span.AddLink(core.Link{
		Context:    toCoreContext(link.SpanContext),
		Attributes: fromOTelAttributes(link.Attributes),
	})
}

// IsRecording implements otel.Span.
func (s *Span) IsRecording() bool {
	return s.span.IsRecording()
}

// RecordError implements otel.Span by adding an "exception" event, per the
// OpenTelemetry semantic convention for error recording.
func (s *Span) RecordError(err error, opts ...otel.EventOption) {
	if err == nil {
		return
	}
	cfg := otel.NewEventConfig(opts...)
	attrs := append([]core.KeyValue{{Key: "exception.message", Value: core.StringValue(err.Error())}}, fromOTelAttributes(cfg.Attributes())...)
	s.span.AddEvent("exception", attrs...)
}

// SpanContext implements otel.Span.
func (s *Span) SpanContext() otel.SpanContext {
	return fromCoreContext(s.span.Context())
}

// SetStatus implements otel.Span.
func (s *Span) SetStatus(code codes.Code, description string) {
	s.span.SetStatus(fromOTelCode(code), description)
}

// SetName implements otel.Span.
func (s *Span) SetName(name string) {
	s.span.UpdateName(name)
}

// SetAttributes implements otel.Span.
func (s *Span) SetAttributes(kv ...attribute.KeyValue) {
	s.span.SetAttributes(fromOTelAttributes(kv)...)
}

// TracerProvider implements otel.Span.
func (s *Span) TracerProvider() otel.TracerProvider {
	return s.provider
}

func fromOTelKind(k otel.SpanKind) core.SpanKind {
	switch k {
	case otel.SpanKindServer:
		return core.KindServer
	case otel.SpanKindClient:
		return core.KindClient
	case otel.SpanKindProducer:
		return core.KindProducer
	case otel.SpanKindConsumer:
		return core.KindConsumer
	default:
		return core.KindInternal
	}
}

func fromOTelCode(c codes.Code) core.StatusCode {
	switch c {
	case codes.Ok:
		return core.StatusOK
	case codes.Error:
		return core.StatusError
	default:
		return core.StatusUnset
	}
}

func fromOTelAttributes(kv []attribute.KeyValue) []core.KeyValue {
	out := make([]core.KeyValue, 0, len(kv))
	for _, a := range kv {
		out = append(out, fromOTelAttribute(a))
	}
	return out
}

func fromOTelAttribute(a attribute.KeyValue) core.KeyValue {
	key := string(a.Key)
	switch a.Value.Type() {
	case attribute.BOOL:
		return core.KeyValue{Key: key, Value: core.BoolValue(a.Value.AsBool())}
	case attribute.INT64:
		return core.KeyValue{Key: key, Value: core.Int64Value(a.Value.AsInt64())}
	case attribute.FLOAT64:
		return core.KeyValue{Key: key, Value: core.Float64Value(a.Value.AsFloat64())}
	default:
		return core.KeyValue{Key: key, Value: core.StringValue(a.Value.AsString())}
	}
}

func toCoreContext(sc otel.SpanContext) core.SpanContext {
	otelTraceID := sc.TraceID()
	otelSpanID := sc.SpanID()
	var traceID core.TraceID
	copy(traceID[:], otelTraceID[:])
	var spanID core.SpanID
	copy(spanID[:], otelSpanID[:])
	flags := core.TraceFlags(0).WithSampled(sc.IsSampled())
	var ts core.Tracestate
	for _, e := range sc.TraceState().Entries() {
		ts = ts.With(e.Key, e.Value)
	}
	return core.NewSpanContext(traceID, spanID, flags, ts)
}

func fromCoreContext(sc core.SpanContext) otel.SpanContext {
	traceID, _ := otel.TraceIDFromHex(sc.TraceID().String())
	spanID, _ := otel.SpanIDFromHex(sc.SpanID().String())
	traceFlags := otel.TraceFlags(0)
	if sc.IsSampled() {
		traceFlags = otel.FlagsSampled
	}
	state := otel.TraceState{}
	for _, e := range sc.Tracestate().Entries() {
		state, _ = state.Insert(e.Key, e.Value)
	}
	return otel.NewSpanContext(otel.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: traceFlags,
		TraceState: state,
	})
}
