// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016 Datadog, Inc.

package tracecore

// Event is a named, attributed point-in-time annotation on a span. Wall
// time is attached externally (see TimedEvent) at record time.
type Event struct {
	Name       string
	Attributes []KeyValue
}

// NewEvent builds an Event from a name and attribute map.
func NewEvent(name string, attrs map[string]AttributeValue) Event {
	e := Event{Name: name}
	for k, v := range attrs {
		e.Attributes = append(e.Attributes, KeyValue{Key: k, Value: v})
	}
	return e
}

// TimedEvent pairs an Event with the monotonic reading taken when it was
// recorded.
type TimedEvent struct {
	NanosMonotonic int64
	Event          Event
}

// Link associates a span with a related SpanContext (e.g. batched
// producer/consumer correlations) plus attributes describing the relation.
type Link struct {
	Context    SpanContext
	Attributes []KeyValue
}
