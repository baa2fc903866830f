// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016 Datadog, Inc.

package samplers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	core "github.com/tracecore/tracecore"
	"github.com/tracecore/tracecore/samplers"
)

func TestAlwaysAndNeverSample(t *testing.T) {
	assert.True(t, samplers.AlwaysSample().ShouldSample(core.SamplingParameters{}).Sampled)
	assert.False(t, samplers.NeverSample().ShouldSample(core.SamplingParameters{}).Sampled)
}

func TestParentBasedHonorsParentSampledFlag(t *testing.T) {
	s := samplers.ParentBased(samplers.NeverSample())

	sampledParent := core.NewSpanContext(core.TraceID{1}, core.SpanID{1}, core.FlagsSampled, core.Tracestate{})
	result := s.ShouldSample(core.SamplingParameters{ParentContext: sampledParent})
	assert.True(t, result.Sampled)

	unsampledParent := core.NewSpanContext(core.TraceID{1}, core.SpanID{1}, 0, core.Tracestate{})
	result = s.ShouldSample(core.SamplingParameters{ParentContext: unsampledParent})
	assert.False(t, result.Sampled)
}

func TestParentBasedDelegatesToRootWhenNoParent(t *testing.T) {
	s := samplers.ParentBased(samplers.AlwaysSample())
	result := s.ShouldSample(core.SamplingParameters{})
	assert.True(t, result.Sampled)
}

func TestRateLimitedAdmitsUpToLimit(t *testing.T) {
	s := samplers.RateLimited(0) // zero rate: only the initial burst of one is ever admitted
	first := s.ShouldSample(core.SamplingParameters{})
	second := s.ShouldSample(core.SamplingParameters{})
	assert.True(t, first.Sampled)
	assert.False(t, second.Sampled)
}
