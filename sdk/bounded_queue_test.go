// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016 Datadog, Inc.

package sdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// S6 — event eviction with cap 8: push 16, retain the last 8, dropped=8.
func TestBoundedQueueEviction(t *testing.T) {
	q := NewBoundedQueue[int](8)
	for i := 0; i < 16; i++ {
		q.Push(i)
	}
	assert.Equal(t, 8, q.Len())
	assert.Equal(t, uint32(8), q.Dropped())
	assert.Equal(t, []int{8, 9, 10, 11, 12, 13, 14, 15}, q.Snapshot())
}

func TestBoundedQueueUnderCapacity(t *testing.T) {
	q := NewBoundedQueue[string](4)
	q.Push("a")
	q.Push("b")
	assert.Equal(t, 2, q.Len())
	assert.Equal(t, uint32(0), q.Dropped())
	assert.Equal(t, []string{"a", "b"}, q.Snapshot())
}

func TestBoundedQueueZeroCapacity(t *testing.T) {
	q := NewBoundedQueue[int](0)
	q.Push(1)
	q.Push(2)
	assert.Equal(t, 0, q.Len())
	assert.Equal(t, uint32(2), q.Dropped())
	assert.Empty(t, q.Snapshot())
}
