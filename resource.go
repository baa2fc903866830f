// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016 Datadog, Inc.

package tracecore

// Resource is an immutable string-to-string label set describing the
// emitter of a trace. It is opaque to the span itself: the Tracer supplies
// it and the core only carries it through to snapshots. Auto-detection of
// resource attributes (cloud/host metadata) is a non-goal of this core;
// Resource is deliberately just a closed map built by the caller or by
// DefaultResource.
type Resource struct {
	labels map[string]string
}

// NewResource builds a Resource from a label map. The map is copied.
func NewResource(labels map[string]string) Resource {
	cp := make(map[string]string, len(labels))
	for k, v := range labels {
		cp[k] = v
	}
	return Resource{labels: cp}
}

// Get returns the value for key and whether it was present.
func (r Resource) Get(key string) (string, bool) {
	v, ok := r.labels[key]
	return v, ok
}

// Len returns the number of labels.
func (r Resource) Len() int {
	return len(r.labels)
}

// Range calls f for every label, in unspecified order.
func (r Resource) Range(f func(key, value string)) {
	for k, v := range r.labels {
		f(k, v)
	}
}
