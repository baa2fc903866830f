// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016 Datadog, Inc.

// Package samplers ships the standard Sampler implementations consumed by
// package sdk's TraceConfig: always/never, parent-based, and a
// rate-limited token-bucket sampler. These are collaborators of the core,
// not part of it — the core only depends on the tracecore.Sampler
// interface.
package samplers

import (
	"golang.org/x/time/rate"

	core "github.com/tracecore/tracecore"
)

type alwaysSample struct{}

func (alwaysSample) Description() string { return "AlwaysSample" }

func (alwaysSample) ShouldSample(core.SamplingParameters) core.SamplingResult {
	return core.SamplingResult{Sampled: true}
}

// AlwaysSample returns a Sampler that samples every span.
func AlwaysSample() core.Sampler { return alwaysSample{} }

type neverSample struct{}

func (neverSample) Description() string { return "NeverSample" }

func (neverSample) ShouldSample(core.SamplingParameters) core.SamplingResult {
	return core.SamplingResult{Sampled: false}
}

// NeverSample returns a Sampler that samples no span.
func NeverSample() core.Sampler { return neverSample{} }

type parentBased struct {
	root core.Sampler
}

// ParentBased returns a Sampler that honors the parent's sampled flag
// whenever a valid parent context is present, and otherwise delegates the
// decision to root. Package sdk does not use this type: a TraceConfig built
// without an explicit sampler gets sdk's own default, which behaves like
// ParentBased(AlwaysSample()).
func ParentBased(root core.Sampler) core.Sampler {
	return parentBased{root: root}
}

func (p parentBased) Description() string {
	return "ParentBased{root:" + p.root.Description() + "}"
}

func (p parentBased) ShouldSample(params core.SamplingParameters) core.SamplingResult {
	if params.ParentContext.IsValid() {
		return core.SamplingResult{Sampled: params.ParentContext.IsSampled()}
	}
	return p.root.ShouldSample(params)
}

// rateLimited is a token-bucket sampler: it samples up to limit spans per
// second and rejects overflow, independent of any parent-based decision.
// Useful for bounding trace volume at the root of a service that otherwise
// always samples.
type rateLimited struct {
	limiter *rate.Limiter
}

// RateLimited returns a Sampler backed by golang.org/x/time/rate, admitting
// at most limit spans/sec with a burst of one.
func RateLimited(limit float64) core.Sampler {
	return rateLimited{limiter: rate.NewLimiter(rate.Limit(limit), 1)}
}

func (rateLimited) Description() string { return "RateLimited" }

func (r rateLimited) ShouldSample(core.SamplingParameters) core.SamplingResult {
	return core.SamplingResult{Sampled: r.limiter.Allow()}
}
