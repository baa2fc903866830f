// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016 Datadog, Inc.

package sdk

import (
	"container/list"

	core "github.com/tracecore/tracecore"
)

// BoundedAttributes is a capacity-bounded string-to-AttributeValue mapping
// with access-order (LRU) eviction: re-assigning an existing key refreshes
// its recency. Under steady-state traffic where the same keys are updated
// repeatedly, this keeps the hot set and discards stale keys instead of
// discarding whichever key happened to be inserted first.
//
// BoundedAttributes is not safe for concurrent use on its own; callers
// (RecordingSpan) hold their own lock around every access.
type BoundedAttributes struct {
	cap     int
	total   uint32
	entries map[string]*list.Element
	order   *list.List // front = most recently used, back = least
}

type attrEntry struct {
	key   string
	value core.AttributeValue
}

// NewBoundedAttributes builds a BoundedAttributes with the given capacity.
// A non-positive capacity means nothing is ever retained, though total
// still accumulates (matching BoundedQueue's treatment of a zero cap).
func NewBoundedAttributes(capacity int) *BoundedAttributes {
	return &BoundedAttributes{
		cap:     capacity,
		entries: make(map[string]*list.Element),
		order:   list.New(),
	}
}

// Put inserts or updates key, refreshing its recency, and increments the
// insertion total unconditionally. If size exceeds capacity afterward, the
// least-recently-accessed entry is evicted.
func (b *BoundedAttributes) Put(key string, value core.AttributeValue) {
	b.total++
	if el, ok := b.entries[key]; ok {
		el.Value.(*attrEntry).value = value
		b.order.MoveToFront(el)
		return
	}
	if b.cap <= 0 {
		return
	}
	el := b.order.PushFront(&attrEntry{key: key, value: value})
	b.entries[key] = el
	if len(b.entries) > b.cap {
		b.evictOldest()
	}
}

// PutAll is equivalent to calling Put for every entry in kvs, in order.
func (b *BoundedAttributes) PutAll(kvs ...core.KeyValue) {
	for _, kv := range kvs {
		b.Put(kv.Key, kv.Value)
	}
}

func (b *BoundedAttributes) evictOldest() {
	oldest := b.order.Back()
	if oldest == nil {
		return
	}
	b.order.Remove(oldest)
	delete(b.entries, oldest.Value.(*attrEntry).key)
}

// Len returns the current retained size.
func (b *BoundedAttributes) Len() int {
	return len(b.entries)
}

// Dropped returns total insertions minus current size.
func (b *BoundedAttributes) Dropped() uint32 {
	return b.total - uint32(len(b.entries))
}

// Total returns the running count of Put calls.
func (b *BoundedAttributes) Total() uint32 {
	return b.total
}

// Snapshot returns the retained entries in least-to-most-recently-used
// order. The order is an implementation choice: callers should rely only
// on the final set and the dropped count, not on this ordering.
func (b *BoundedAttributes) Snapshot() []core.KeyValue {
	out := make([]core.KeyValue, 0, len(b.entries))
	for el := b.order.Back(); el != nil; el = el.Prev() {
		e := el.Value.(*attrEntry)
		out = append(out, core.KeyValue{Key: e.key, Value: e.value})
	}
	return out
}
