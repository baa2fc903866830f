// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016 Datadog, Inc.

package sdk_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	core "github.com/tracecore/tracecore"
	"github.com/tracecore/tracecore/sdk"
	"github.com/tracecore/tracecore/sdktest"
)

func newTestTracer(t *testing.T) (*sdk.Tracer, *sdktest.SpanRecorder) {
	t.Helper()
	rec := sdktest.NewSpanRecorder()
	tracer := sdk.NewTracer(sdk.WithInitialSpanProcessors(rec))
	return tracer, rec
}

func TestSpanBuilderRootSpan(t *testing.T) {
	tracer, rec := newTestTracer(t)

	span, err := tracer.SpanBuilder("root-op").Start()
	require.NoError(t, err)
	require.True(t, span.IsRecording())
	span.End()

	finished := rec.FinishedSpans()
	require.Len(t, finished, 1)
	assert.True(t, finished[0].IsRoot)
	assert.Equal(t, "root-op", finished[0].Name)
	assert.True(t, finished[0].TraceID.IsValid())
}

func TestSpanBuilderParentPropagation(t *testing.T) {
	tracer, rec := newTestTracer(t)

	parent, err := tracer.SpanBuilder("parent").Start()
	require.NoError(t, err)
	child, err := tracer.SpanBuilder("child").WithParentSpan(parent).Start()
	require.NoError(t, err)

	child.End()
	parent.End()

	finished := rec.FinishedSpans()
	require.Len(t, finished, 2)
	childSnap, parentSnap := finished[0], finished[1]
	assert.Equal(t, parentSnap.TraceID, childSnap.TraceID)
	assert.Equal(t, parentSnap.SpanID, childSnap.ParentSpanID)
	assert.False(t, childSnap.IsRoot)
	assert.EqualValues(t, 1, parentSnap.ChildSpanCount)
}

func TestSpanBuilderAmbientContextPropagation(t *testing.T) {
	tracer, rec := newTestTracer(t)

	parent, err := tracer.SpanBuilder("parent").Start()
	require.NoError(t, err)
	ctx, scope := tracer.WithSpan(context.Background(), parent)

	child, err := tracer.SpanBuilder("child").WithContext(ctx).Start()
	require.NoError(t, err)

	assert.Same(t, parent, tracer.CurrentSpan(ctx))
	restored := scope.Release()
	assert.Nil(t, tracer.CurrentSpan(restored))

	child.End()
	parent.End()

	finished := rec.FinishedSpans()
	require.Len(t, finished, 2)
	assert.Equal(t, finished[1].SpanID, finished[0].ParentSpanID)
}

func TestSpanBuilderInvalidNameRejected(t *testing.T) {
	tracer, _ := newTestTracer(t)

	span, err := tracer.SpanBuilder("").Start()
	assert.ErrorIs(t, err, sdk.ErrInvalidName)
	assert.False(t, span.IsRecording())
}

func TestSpanBuilderNeverSampleReturnsNoop(t *testing.T) {
	tracer, rec := newTestTracer(t)
	tracer.UpdateActiveTraceConfig(sdk.NewTraceConfig(sdk.WithSampler(neverSampler{})))

	span, err := tracer.SpanBuilder("dropped").Start()
	require.NoError(t, err)
	assert.False(t, span.IsRecording())
	span.SetAttribute("x", core.BoolValue(true)) // must not panic on a no-op span
	span.End()

	assert.Empty(t, rec.FinishedSpans())
}

func TestTracerShutdownIsIdempotentAndRejectsNewSpans(t *testing.T) {
	tracer, rec := newTestTracer(t)

	tracer.Shutdown()
	tracer.Shutdown() // second call must not panic or double-invoke processor.Shutdown
	assert.True(t, rec.ShutdownCalled())

	span, err := tracer.SpanBuilder("after-shutdown").Start()
	require.NoError(t, err)
	assert.False(t, span.IsRecording())
}

func TestAddSpanProcessorAppliesOnlyToSubsequentSpans(t *testing.T) {
	tracer, rec1 := newTestTracer(t)

	before, err := tracer.SpanBuilder("before").Start()
	require.NoError(t, err)

	rec2 := sdktest.NewSpanRecorder()
	tracer.AddSpanProcessor(rec2)

	after, err := tracer.SpanBuilder("after").Start()
	require.NoError(t, err)

	before.End()
	after.End()

	assert.Len(t, rec1.FinishedSpans(), 2, "rec1 was registered before both spans started")
	assert.Len(t, rec2.FinishedSpans(), 1, "rec2 only observes spans started after registration")
}

type neverSampler struct{}

func (neverSampler) Description() string { return "test-never" }
func (neverSampler) ShouldSample(core.SamplingParameters) core.SamplingResult {
	return core.SamplingResult{Sampled: false}
}
