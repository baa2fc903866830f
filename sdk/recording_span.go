// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016 Datadog, Inc.

package sdk

import (
	"sync"

	core "github.com/tracecore/tracecore"
	"github.com/tracecore/tracecore/internal/log"
)

// RecordingSpan is the live, thread-safe span record: mutation API,
// snapshot emission, termination. One sync.RWMutex per span guards every
// mutable field; the lock is held only for field manipulation, never
// across a processor callback (see End).
type RecordingSpan struct {
	// immutable, set at construction
	context      core.SpanContext
	parentSpanID core.SpanID
	isRoot       bool
	kind         core.SpanKind
	clock        Clock
	tsConverter  *TimestampConverter
	traceConfig  *TraceConfig
	resource     core.Resource
	processor    core.SpanProcessor
	startNanos   int64

	mu sync.RWMutex

	name       string
	attributes *BoundedAttributes
	events     *BoundedQueue[core.TimedEvent]
	links      *BoundedQueue[core.Link]
	children   uint32
	status     core.Status
	hasStatus  bool
	endNanos   int64
	ended      bool
}

var _ core.Span = (*RecordingSpan)(nil)
var _ core.ReadOnlySpan = (*RecordingSpan)(nil)

// Context implements core.Span. The SpanContext is immutable; this call
// never needs the lock.
func (s *RecordingSpan) Context() core.SpanContext {
	return s.context
}

// IsRecording implements core.Span: true until End() has been called.
func (s *RecordingSpan) IsRecording() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.ended
}

// Ended implements core.Span/core.ReadOnlySpan.
func (s *RecordingSpan) Ended() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ended
}

// mutate runs f under the write lock, unless the span has already ended,
// in which case it logs at debug severity and returns without running f.
// This is the single choke point implementing spec.md §7's "misuse after
// termination is a silent no-op" rule.
func (s *RecordingSpan) mutate(op string, f func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ended {
		log.Debug("%s called on ended span %s: ignored", op, s.context.SpanID())
		return
	}
	f()
}

// SetAttribute implements core.Span.
func (s *RecordingSpan) SetAttribute(key string, value core.AttributeValue) {
	s.mutate("SetAttribute", func() {
		s.attrs().Put(key, value)
	})
}

// SetAttributes implements core.Span.
func (s *RecordingSpan) SetAttributes(kvs ...core.KeyValue) {
	s.mutate("SetAttributes", func() {
		s.attrs().PutAll(kvs...)
	})
}

// AddEvent implements core.Span, timestamping with the clock's current
// monotonic reading at entry.
func (s *RecordingSpan) AddEvent(name string, attrs ...core.KeyValue) {
	now := s.clock.NowNanos()
	s.mutate("AddEvent", func() {
		s.evts().Push(core.TimedEvent{
			NanosMonotonic: now,
			Event:          core.Event{Name: name, Attributes: attrs},
		})
	})
}

// AddLink implements core.Span.
func (s *RecordingSpan) AddLink(link core.Link) {
	s.mutate("AddLink", func() {
		s.lks().Push(link)
	})
}

// SetStatus implements core.Span.
func (s *RecordingSpan) SetStatus(code core.StatusCode, description string) {
	s.mutate("SetStatus", func() {
		s.status = core.Status{Code: code, Description: description}
		s.hasStatus = true
	})
}

// UpdateName implements core.Span.
func (s *RecordingSpan) UpdateName(name string) {
	s.mutate("UpdateName", func() {
		s.name = name
	})
}

// AddChild implements core.Span.
func (s *RecordingSpan) AddChild() {
	s.mutate("AddChild", func() {
		s.children++
	})
}

// attrs/evts/lks lazily allocate their bounded collection on first use.
// Callers must already hold s.mu.
func (s *RecordingSpan) attrs() *BoundedAttributes {
	if s.attributes == nil {
		s.attributes = NewBoundedAttributes(s.traceConfig.MaxAttributes())
	}
	return s.attributes
}

func (s *RecordingSpan) evts() *BoundedQueue[core.TimedEvent] {
	if s.events == nil {
		s.events = NewBoundedQueue[core.TimedEvent](s.traceConfig.MaxEvents())
	}
	return s.events
}

func (s *RecordingSpan) lks() *BoundedQueue[core.Link] {
	if s.links == nil {
		s.links = NewBoundedQueue[core.Link](s.traceConfig.MaxLinks())
	}
	return s.links
}

// End implements core.Span: records the end time, flips the ended flag
// under the lock, releases, then invokes processor.OnEnd outside the lock
// so a processor can never deadlock by calling back into the span. A
// second End() is a silent, debug-logged no-op — no further OnEnd fires.
func (s *RecordingSpan) End() {
	var fire bool
	s.mu.Lock()
	if s.ended {
		log.Debug("End called twice on span %s: ignored", s.context.SpanID())
	} else {
		s.endNanos = s.clock.NowNanos()
		s.ended = true
		fire = true
	}
	s.mu.Unlock()

	if fire && s.processor != nil {
		s.processor.OnEnd(s)
	}
}

// Snapshot takes a consistent view of every field under the read lock and
// produces the wire-format record. A live span's EndTime reflects "now"
// (so the snapshot shows current latency); an ended span's EndTime is the
// frozen value recorded by End(). Status defaults to OK only when the
// snapshot is of an ended span; a live, never-set status is reported
// unset.
func (s *RecordingSpan) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var endNanos int64
	if s.ended {
		endNanos = s.endNanos
	} else {
		endNanos = s.clock.NowNanos()
	}

	status := s.status
	if s.ended && !s.hasStatus {
		status = core.Status{Code: core.StatusOK}
	}

	snap := Snapshot{
		TraceID:           s.context.TraceID(),
		SpanID:            s.context.SpanID(),
		ParentSpanID:      s.parentSpanID,
		IsRoot:            s.isRoot,
		Tracestate:        s.context.Tracestate(),
		Name:              s.name,
		Kind:              s.kind,
		StartTime:         toWallTime(s.tsConverter.Convert(s.startNanos)),
		EndTime:           toWallTime(s.tsConverter.Convert(endNanos)),
		Ended:             s.ended,
		Status:            status,
		ChildSpanCount:    s.children,
		HasChildSpanCount: true,
		Resource:          s.resource,
	}
	if s.attributes != nil {
		snap.Attributes = s.attributes.Snapshot()
		snap.DroppedAttributes = s.attributes.Dropped()
	}
	if s.events != nil {
		for _, te := range s.events.Snapshot() {
			snap.Events = append(snap.Events, SnapshotEvent{
				Time:       toWallTime(s.tsConverter.Convert(te.NanosMonotonic)),
				Name:       te.Event.Name,
				Attributes: te.Event.Attributes,
			})
		}
		snap.DroppedEvents = s.events.Dropped()
	}
	if s.links != nil {
		for _, l := range s.links.Snapshot() {
			snap.Links = append(snap.Links, SnapshotLink{
				TraceID:    l.Context.TraceID(),
				SpanID:     l.Context.SpanID(),
				Tracestate: l.Context.Tracestate(),
				Attributes: l.Attributes,
			})
		}
		snap.DroppedLinks = s.links.Dropped()
	}
	return snap
}

// LatencyNanos returns end_time_effective - start_nanos, where
// end_time_effective is the frozen end time if ended, else now.
func (s *RecordingSpan) LatencyNanos() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.ended {
		return s.endNanos - s.startNanos
	}
	return s.clock.NowNanos() - s.startNanos
}

// Kind returns the span's kind (immutable, no lock needed).
func (s *RecordingSpan) Kind() core.SpanKind { return s.kind }

// Name returns the current name.
func (s *RecordingSpan) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

// Status returns the current status and whether it was ever explicitly set.
func (s *RecordingSpan) Status() (core.Status, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status, s.hasStatus
}
