// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016 Datadog, Inc.

package sdk

import "time"

// TimestampConverter captures one (wall, monotonic) anchor pair at
// construction and converts any later monotonic reading into a wall-clock
// timestamp. Sharing one converter across sibling spans under the same
// parent guarantees their event ordering stays monotone even if the
// system wall clock jitters between spans.
type TimestampConverter struct {
	wallAnchor time.Time
	monoAnchor int64
}

// NewTimestampConverter anchors a converter at the clock's current
// (wall, monotonic) reading.
func NewTimestampConverter(clock Clock) *TimestampConverter {
	return &TimestampConverter{
		wallAnchor: clock.WallNow(),
		monoAnchor: clock.NowNanos(),
	}
}

// Convert maps a monotonic nanosecond reading to a wall-clock time.
func (c *TimestampConverter) Convert(monoNanos int64) time.Time {
	return c.wallAnchor.Add(time.Duration(monoNanos - c.monoAnchor))
}
