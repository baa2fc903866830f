// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016 Datadog, Inc.

package tracecore

// Tracestate is an ordered list of vendor key/value pairs carried on a
// SpanContext (W3C tracestate shape). Parsing and serializing the wire
// header form is a propagation-codec concern and out of scope for this
// core; Tracestate here is the in-memory ordered structure only.
type Tracestate struct {
	entries []tracestateEntry
}

type tracestateEntry struct {
	key, value string
}

// Get returns the value for key and whether it was present.
func (t Tracestate) Get(key string) (string, bool) {
	for _, e := range t.entries {
		if e.key == key {
			return e.value, true
		}
	}
	return "", false
}

// Len returns the number of entries.
func (t Tracestate) Len() int {
	return len(t.entries)
}

// Entries returns the (key, value) pairs in list order: the most recently
// set key first (see With).
func (t Tracestate) Entries() []struct{ Key, Value string } {
	out := make([]struct{ Key, Value string }, len(t.entries))
	for i, e := range t.entries {
		out[i] = struct{ Key, Value string }{e.key, e.value}
	}
	return out
}

// With returns a new Tracestate with key set to value at the front of the
// list. A new key is added at the front; an existing key is removed from
// its old position and moved to the front, per W3C tracestate mutation
// semantics.
func (t Tracestate) With(key, value string) Tracestate {
	next := make([]tracestateEntry, 0, len(t.entries)+1)
	next = append(next, tracestateEntry{key, value})
	for _, e := range t.entries {
		if e.key != key {
			next = append(next, e)
		}
	}
	return Tracestate{entries: next}
}
