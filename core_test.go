// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016 Datadog, Inc.

package tracecore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	core "github.com/tracecore/tracecore"
)

func TestTraceIDValidity(t *testing.T) {
	assert.False(t, core.TraceIDZero.IsValid())
	id := core.TraceID{1}
	assert.True(t, id.IsValid())
	assert.Len(t, id.String(), 32)
}

func TestSpanIDValidity(t *testing.T) {
	assert.False(t, core.SpanIDZero.IsValid())
	id := core.SpanID{1}
	assert.True(t, id.IsValid())
	assert.Len(t, id.String(), 16)
}

func TestTraceFlagsSampled(t *testing.T) {
	f := core.TraceFlags(0)
	assert.False(t, f.IsSampled())
	f = f.WithSampled(true)
	assert.True(t, f.IsSampled())
	f = f.WithSampled(false)
	assert.False(t, f.IsSampled())
}

func TestSpanContextEquality(t *testing.T) {
	a := core.NewSpanContext(core.TraceID{1}, core.SpanID{1}, core.FlagsSampled, core.Tracestate{})
	b := core.NewSpanContext(core.TraceID{1}, core.SpanID{1}, 0, core.Tracestate{})
	c := core.NewSpanContext(core.TraceID{2}, core.SpanID{1}, 0, core.Tracestate{})

	assert.True(t, a.Equal(b), "Equal compares only trace/span id, not flags")
	assert.False(t, a.Equal(c))
	assert.True(t, a.IsValid())
	assert.False(t, core.SpanContext{}.IsValid())
}

func TestSpanContextWithTraceFlagsAndTracestateAreCopyOnWrite(t *testing.T) {
	base := core.NewSpanContext(core.TraceID{1}, core.SpanID{1}, 0, core.Tracestate{})
	withFlags := base.WithTraceFlags(core.FlagsSampled)

	assert.False(t, base.IsSampled(), "original is untouched")
	assert.True(t, withFlags.IsSampled())

	withState := base.WithTracestate(core.Tracestate{}.With("k", "v"))
	assert.Equal(t, 0, base.Tracestate().Len(), "original is untouched")
	assert.Equal(t, 1, withState.Tracestate().Len())
}

func TestTracestateInsertionOrderAndMoveToFront(t *testing.T) {
	ts := core.Tracestate{}
	ts = ts.With("a", "1")
	ts = ts.With("b", "2")
	ts = ts.With("a", "3") // re-setting "a" moves it to the front

	entries := ts.Entries()
	assert.Equal(t, 2, ts.Len())
	assert.Equal(t, "a", entries[0].Key)
	assert.Equal(t, "3", entries[0].Value)
	assert.Equal(t, "b", entries[1].Key)

	v, ok := ts.Get("b")
	assert.True(t, ok)
	assert.Equal(t, "2", v)

	_, ok = ts.Get("missing")
	assert.False(t, ok)
}

func TestResourceGetLenRange(t *testing.T) {
	r := core.NewResource(map[string]string{"service.name": "checkout"})
	v, ok := r.Get("service.name")
	assert.True(t, ok)
	assert.Equal(t, "checkout", v)
	assert.Equal(t, 1, r.Len())

	seen := map[string]string{}
	r.Range(func(k, v string) { seen[k] = v })
	assert.Equal(t, map[string]string{"service.name": "checkout"}, seen)
}

func TestAttributeValueAccessors(t *testing.T) {
	assert.Equal(t, "x", core.StringValue("x").AsString())
	assert.EqualValues(t, 7, core.Int64Value(7).AsInt64())
	assert.InDelta(t, 1.5, core.Float64Value(1.5).AsFloat64(), 0.0001)
	assert.True(t, core.BoolValue(true).AsBool())
	assert.Equal(t, core.ValueBool, core.BoolValue(true).Kind())
}

type recordingProcessor struct {
	starts, ends, shutdowns int
}

func (p *recordingProcessor) OnStart(core.ReadOnlySpan) { p.starts++ }
func (p *recordingProcessor) OnEnd(core.ReadOnlySpan)   { p.ends++ }
func (p *recordingProcessor) Shutdown()                 { p.shutdowns++ }

type panickingProcessor struct{}

func (panickingProcessor) OnStart(core.ReadOnlySpan) { panic("boom") }
func (panickingProcessor) OnEnd(core.ReadOnlySpan)   { panic("boom") }
func (panickingProcessor) Shutdown()                 { panic("boom") }

type stubSpan struct{ core.ReadOnlySpan }

func TestMultiProcessorFanOutInOrder(t *testing.T) {
	var order []string
	first := &orderTrackingProcessor{name: "first", order: &order}
	second := &orderTrackingProcessor{name: "second", order: &order}

	mp := core.NewMultiProcessor(first, second)
	mp.OnStart(stubSpan{})

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestMultiProcessorRecoversPanickingProcessor(t *testing.T) {
	rec := &recordingProcessor{}
	mp := core.NewMultiProcessor(panickingProcessor{}, rec)

	assert.NotPanics(t, func() {
		mp.OnStart(stubSpan{})
		mp.OnEnd(stubSpan{})
		mp.Shutdown()
	})
	assert.Equal(t, 1, rec.starts)
	assert.Equal(t, 1, rec.ends)
	assert.Equal(t, 1, rec.shutdowns)
}

type orderTrackingProcessor struct {
	name  string
	order *[]string
}

func (p *orderTrackingProcessor) OnStart(core.ReadOnlySpan) { *p.order = append(*p.order, p.name) }
func (p *orderTrackingProcessor) OnEnd(core.ReadOnlySpan)   {}
func (p *orderTrackingProcessor) Shutdown()                 {}
