// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016 Datadog, Inc.

package sdk

import (
	"crypto/rand"
	"sync"

	core "github.com/tracecore/tracecore"
)

// IDGenerator produces fresh, uniformly random trace and span ids. It must
// be safe for concurrent use; the Tracer owns exactly one instance, not a
// process-global one, so multiple tracers in one process never share
// entropy state.
type IDGenerator interface {
	NewTraceID() core.TraceID
	NewSpanID() core.SpanID
}

// randIDGenerator is the default IDGenerator, backed by crypto/rand. Each
// method holds mu while it reads random bytes, retrying until the id is
// non-zero.
type randIDGenerator struct {
	mu sync.Mutex
}

// NewRandomIDGenerator builds the default, crypto/rand-backed IDGenerator.
func NewRandomIDGenerator() IDGenerator {
	return &randIDGenerator{}
}

func (g *randIDGenerator) NewTraceID() core.TraceID {
	g.mu.Lock()
	defer g.mu.Unlock()
	var id core.TraceID
	for {
		_, _ = rand.Read(id[:])
		if id.IsValid() {
			return id
		}
	}
}

func (g *randIDGenerator) NewSpanID() core.SpanID {
	g.mu.Lock()
	defer g.mu.Unlock()
	var id core.SpanID
	for {
		_, _ = rand.Read(id[:])
		if id.IsValid() {
			return id
		}
	}
}
