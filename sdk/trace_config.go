// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016 Datadog, Inc.

package sdk

import core "github.com/tracecore/tracecore"

const (
	// DefaultMaxAttributes is the default cap on attributes per span.
	DefaultMaxAttributes = 32
	// DefaultMaxEvents is the default cap on events per span.
	DefaultMaxEvents = 128
	// DefaultMaxLinks is the default cap on links per span.
	DefaultMaxLinks = 32
)

// TraceConfig is an immutable configuration snapshot consulted by the
// SpanBuilder: sampler and per-span capacity caps. A Tracer atomically
// swaps its active TraceConfig; a builder captures the snapshot in effect
// when it was created so a mid-build rotation never splits one span
// across two configs.
type TraceConfig struct {
	sampler       core.Sampler
	maxAttributes int
	maxEvents     int
	maxLinks      int
}

// Sampler returns the configured sampler.
func (c *TraceConfig) Sampler() core.Sampler { return c.sampler }

// MaxAttributes returns the per-span attribute cap.
func (c *TraceConfig) MaxAttributes() int { return c.maxAttributes }

// MaxEvents returns the per-span event cap.
func (c *TraceConfig) MaxEvents() int { return c.maxEvents }

// MaxLinks returns the per-span link cap.
func (c *TraceConfig) MaxLinks() int { return c.maxLinks }

// TraceConfigOption configures a TraceConfig at construction.
type TraceConfigOption func(*TraceConfig)

// WithSampler overrides the default sampler.
func WithSampler(s core.Sampler) TraceConfigOption {
	return func(c *TraceConfig) { c.sampler = s }
}

// WithMaxAttributes overrides the default attribute cap.
func WithMaxAttributes(n int) TraceConfigOption {
	return func(c *TraceConfig) { c.maxAttributes = n }
}

// WithMaxEvents overrides the default event cap.
func WithMaxEvents(n int) TraceConfigOption {
	return func(c *TraceConfig) { c.maxEvents = n }
}

// WithMaxLinks overrides the default link cap.
func WithMaxLinks(n int) TraceConfigOption {
	return func(c *TraceConfig) { c.maxLinks = n }
}

// NewTraceConfig builds a TraceConfig, applying defaults before opts.
// The default sampler is a parent-based, always-sample-at-root policy,
// per spec.
func NewTraceConfig(opts ...TraceConfigOption) *TraceConfig {
	c := &TraceConfig{
		maxAttributes: DefaultMaxAttributes,
		maxEvents:     DefaultMaxEvents,
		maxLinks:      DefaultMaxLinks,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.sampler == nil {
		c.sampler = defaultSampler{}
	}
	return c
}

// defaultSampler implements the spec's fallback when no sampler is
// configured: parent-based, always sample at root. Package sdk does not
// import package samplers; this unexported type behaves like
// samplers.ParentBased(samplers.AlwaysSample()) and reports the same
// Description.
type defaultSampler struct{}

func (defaultSampler) Description() string { return "ParentBased{root:AlwaysSample}" }

func (defaultSampler) ShouldSample(p core.SamplingParameters) core.SamplingResult {
	if p.ParentContext.IsValid() {
		return core.SamplingResult{Sampled: p.ParentContext.IsSampled()}
	}
	return core.SamplingResult{Sampled: true}
}
