// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016 Datadog, Inc.

package sdk

import "time"

func toWallTime(t time.Time) WallTime {
	return WallTime{Seconds: t.Unix(), Nanos: int32(t.Nanosecond())}
}
