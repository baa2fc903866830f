// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016 Datadog, Inc.

package sdk

import (
	"sync"
	"time"
)

// fakeClock is a deterministic, manually-advanced Clock for tests that
// need reproducible latency/ordering assertions.
type fakeClock struct {
	mu    sync.Mutex
	nanos int64
	wall  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{wall: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) NowNanos() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.nanos
}

func (c *fakeClock) WallNow() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.wall.Add(time.Duration(c.nanos))
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nanos += int64(d)
}

var _ Clock = (*fakeClock)(nil)
