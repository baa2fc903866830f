// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016 Datadog, Inc.

package sdk

import (
	core "github.com/tracecore/tracecore"

	"github.com/google/uuid"
)

// DefaultResource builds the minimal Resource a Tracer supplies to every
// span when the caller configures none. Auto-detecting cloud/host resource
// attributes is a non-goal of this core; this only stamps a process-wide
// identity attribute so spans from the same process instance can be
// correlated without a full resource-detection subsystem.
func DefaultResource() core.Resource {
	return core.NewResource(map[string]string{
		"service.instance.id": uuid.NewString(),
	})
}
