// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016 Datadog, Inc.

package sdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	core "github.com/tracecore/tracecore"
)

func newTestRecordingSpan(t *testing.T, clock Clock) *RecordingSpan {
	t.Helper()
	cfg := NewTraceConfig(WithMaxAttributes(2), WithMaxEvents(2), WithMaxLinks(2))
	sc := core.NewSpanContext(core.TraceID{1}, core.SpanID{1}, core.FlagsSampled, core.Tracestate{})
	return &RecordingSpan{
		context:     sc,
		isRoot:      true,
		clock:       clock,
		tsConverter: NewTimestampConverter(clock),
		traceConfig: cfg,
		resource:    core.NewResource(nil),
		startNanos:  clock.NowNanos(),
		name:        "op",
	}
}

func TestRecordingSpanBasicLifecycle(t *testing.T) {
	clock := newFakeClock()
	s := newTestRecordingSpan(t, clock)

	require.True(t, s.IsRecording())
	s.SetAttribute("k", core.StringValue("v"))
	s.AddEvent("e1")
	s.SetStatus(core.StatusError, "boom")

	clock.Advance(1000)
	s.End()

	assert.False(t, s.IsRecording())
	assert.True(t, s.Ended())

	snap := s.Snapshot()
	assert.Equal(t, "op", snap.Name)
	assert.True(t, snap.Ended)
	assert.Equal(t, core.StatusError, snap.Status.Code)
	assert.Equal(t, "boom", snap.Status.Description)
	require.Len(t, snap.Attributes, 1)
	assert.Equal(t, "k", snap.Attributes[0].Key)
	require.Len(t, snap.Events, 1)
	assert.Equal(t, "e1", snap.Events[0].Name)
	assert.Equal(t, int64(1000), snap.EndTime.Nanos-snap.StartTime.Nanos)
}

func TestRecordingSpanMutationAfterEndIsSilentNoOp(t *testing.T) {
	clock := newFakeClock()
	s := newTestRecordingSpan(t, clock)

	s.SetAttribute("before", core.BoolValue(true))
	s.End()

	s.SetAttribute("after", core.BoolValue(true))
	s.AddEvent("after-event")
	s.SetStatus(core.StatusError, "too late")
	s.UpdateName("renamed")
	s.End() // second End: must not re-fire OnEnd or panic

	snap := s.Snapshot()
	assert.Equal(t, "op", snap.Name)
	require.Len(t, snap.Attributes, 1)
	assert.Equal(t, "before", snap.Attributes[0].Key)
	assert.Empty(t, snap.Events)
	assert.Equal(t, core.StatusOK, snap.Status.Code, "End() with no explicit status defaults to OK")
}

func TestRecordingSpanAttributeAndEventCapsDropOldest(t *testing.T) {
	clock := newFakeClock()
	s := newTestRecordingSpan(t, clock)

	for i := 0; i < 5; i++ {
		s.AddEvent("e")
	}
	s.SetAttribute("a", core.Int64Value(1))
	s.SetAttribute("b", core.Int64Value(2))
	s.SetAttribute("c", core.Int64Value(3))

	snap := s.Snapshot()
	assert.Len(t, snap.Events, 2, "event cap is 2")
	assert.EqualValues(t, 3, snap.DroppedEvents)
	assert.Len(t, snap.Attributes, 2, "attribute cap is 2")
	assert.EqualValues(t, 1, snap.DroppedAttributes)
}

func TestRecordingSpanLiveSnapshotStatusIsUnset(t *testing.T) {
	clock := newFakeClock()
	s := newTestRecordingSpan(t, clock)

	snap := s.Snapshot()
	assert.False(t, snap.Ended)
	assert.Equal(t, core.StatusUnset, snap.Status.Code)
}

func TestRecordingSpanAddChildIncrementsCount(t *testing.T) {
	clock := newFakeClock()
	s := newTestRecordingSpan(t, clock)

	s.AddChild()
	s.AddChild()
	snap := s.Snapshot()
	require.True(t, snap.HasChildSpanCount)
	assert.EqualValues(t, 2, snap.ChildSpanCount)
}

func TestRecordingSpanLatencyNanos(t *testing.T) {
	clock := newFakeClock()
	s := newTestRecordingSpan(t, clock)

	clock.Advance(500)
	assert.EqualValues(t, 500, s.LatencyNanos(), "latency of a live span tracks the clock")

	clock.Advance(250)
	s.End()
	clock.Advance(1_000_000)
	assert.EqualValues(t, 750, s.LatencyNanos(), "latency of an ended span freezes at End()")
}
