// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016 Datadog, Inc.

package sdk

import core "github.com/tracecore/tracecore"

// WallTime is a (seconds, nanos) wall-clock pair, the wire shape specified
// in spec.md §6 for start_time/end_time.
type WallTime struct {
	Seconds int64
	Nanos   int32
}

// SnapshotEvent is a single (time, event) entry in a Snapshot, with its own
// dropped-attribute count.
type SnapshotEvent struct {
	Time              WallTime
	Name              string
	Attributes        []core.KeyValue
	DroppedAttributes uint32
}

// SnapshotLink is a single link entry in a Snapshot, with its own
// dropped-attribute count.
type SnapshotLink struct {
	TraceID           core.TraceID
	SpanID            core.SpanID
	Tracestate        core.Tracestate
	Attributes        []core.KeyValue
	DroppedAttributes uint32
}

// Snapshot is the serializable, bit-exact-per-spec view of a span at a
// moment in time — live or ended. It is the output of
// RecordingSpan.Snapshot; processors in this SDK (sdktest.SpanRecorder)
// obtain it by type-asserting the ReadOnlySpan they receive to
// *RecordingSpan and calling Snapshot.
type Snapshot struct {
	TraceID      core.TraceID
	SpanID       core.SpanID
	ParentSpanID core.SpanID // zero iff root
	IsRoot       bool
	Tracestate   core.Tracestate

	Name string
	Kind core.SpanKind

	StartTime WallTime
	EndTime   WallTime
	Ended     bool

	Attributes        []core.KeyValue
	DroppedAttributes uint32

	Events        []SnapshotEvent
	DroppedEvents uint32

	Links        []SnapshotLink
	DroppedLinks uint32

	// Status is only meaningful when Ended is true; an unset status on an
	// ended span is reported as core.StatusOK per spec. Live snapshots
	// carry StatusUnset when no status was ever set.
	Status core.Status

	// ChildSpanCount is nullable: HasChildSpanCount distinguishes "zero
	// children" from "unset", per spec.md §4.4's wrapped-uint32 envelope.
	ChildSpanCount    uint32
	HasChildSpanCount bool

	Resource core.Resource
}
