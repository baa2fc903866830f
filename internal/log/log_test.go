// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016 Datadog, Inc.

package log

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func hasMsg(lvl, text string, lines []string) bool {
	for _, line := range lines {
		if strings.HasPrefix(line, lvl+": "+text) {
			return true
		}
	}
	return false
}

func TestLogLevels(t *testing.T) {
	defer func(old Logger) { UseLogger(old) }(logger)
	rl := &RecordLogger{}
	UseLogger(rl)

	t.Run("Warn", func(t *testing.T) {
		rl.Reset()
		Warn("message %d", 1)
		assert.True(t, hasMsg("WARN", "message 1", rl.Logs()))
	})

	t.Run("Debug on", func(t *testing.T) {
		rl.Reset()
		defer func(old Level) { levelThreshold = old }(levelThreshold)
		SetLevel(LevelDebug)
		assert.True(t, DebugEnabled())
		Debug("message %d", 3)
		assert.True(t, hasMsg("DEBUG", "message 3", rl.Logs()))
	})

	t.Run("Debug off", func(t *testing.T) {
		rl.Reset()
		SetLevel(LevelWarn)
		assert.False(t, DebugEnabled())
		Debug("message %d", 2)
		assert.Len(t, rl.Logs(), 0)
	})
}

func TestErrorDedup(t *testing.T) {
	defer func(old Logger) { UseLogger(old) }(logger)
	rl := &RecordLogger{}
	UseLogger(rl)

	t.Run("coalesces repeats", func(t *testing.T) {
		defer func(old time.Duration) { errrate = old }(errrate)
		errrate = 10 * time.Hour
		rl.Reset()

		Error("a message %d", 1)
		Error("a message %d", 2)
		Error("a message %d", 3)
		Error("b message")
		Flush()

		assert.True(t, hasMsg("ERROR", "a message 1, 2 additional messages skipped", rl.Logs()))
		assert.True(t, hasMsg("ERROR", "b message", rl.Logs()))
		assert.Len(t, rl.Logs(), 2)
	})

	t.Run("flush is idempotent", func(t *testing.T) {
		rl.Reset()
		Error("fourth message %d", 4)
		Flush()
		assert.True(t, hasMsg("ERROR", "fourth message 4", rl.Logs()))
		assert.Len(t, rl.Logs(), 1)

		Flush()
		Flush()
		assert.Len(t, rl.Logs(), 1)
	})

	t.Run("caps at the limit", func(t *testing.T) {
		defer func(old time.Duration) { errrate = old }(errrate)
		errrate = 10 * time.Hour
		rl.Reset()

		for i := 0; i < defaultErrorLimit+1; i++ {
			Error("fifth message %d", i)
		}
		Flush()

		assert.True(t, hasMsg("ERROR", "fifth message 0, 200+ additional messages skipped", rl.Logs()))
		assert.Len(t, rl.Logs(), 1)
	})

	t.Run("instant when errrate is zero", func(t *testing.T) {
		defer func(old time.Duration) { errrate = old }(errrate)
		errrate = 0
		rl.Reset()

		Error("sixth message")
		assert.True(t, hasMsg("ERROR", "sixth message", rl.Logs()))
		assert.Len(t, rl.Logs(), 1)
	})
}

func TestRecordLoggerIgnore(t *testing.T) {
	rl := &RecordLogger{}
	rl.Ignore("appsec")
	rl.Log("appsec: blocked a request")
	rl.Log("tracer: started a span")
	assert.Equal(t, []string{"tracer: started a span"}, rl.Logs())
}
