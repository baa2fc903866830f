// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016 Datadog, Inc.

package tracecore

// SpanKind describes the relationship between a span and its caller/callees.
type SpanKind int

const (
	// KindInternal is the default: an operation internal to an application.
	KindInternal SpanKind = iota
	// KindServer is a synchronous request handled by this process.
	KindServer
	// KindClient is a synchronous request issued by this process.
	KindClient
	// KindProducer is a message enqueued for asynchronous processing.
	KindProducer
	// KindConsumer is a message received for asynchronous processing.
	KindConsumer
)

// String implements fmt.Stringer.
func (k SpanKind) String() string {
	switch k {
	case KindServer:
		return "server"
	case KindClient:
		return "client"
	case KindProducer:
		return "producer"
	case KindConsumer:
		return "consumer"
	default:
		return "internal"
	}
}

// StatusCode is the canonical outcome of a span.
type StatusCode int

const (
	// StatusUnset is the default when no status has been explicitly set.
	StatusUnset StatusCode = iota
	// StatusOK marks successful completion.
	StatusOK
	// StatusError marks a failed operation.
	StatusError
)

// Status is the canonical status code plus an optional description,
// emitted on ended-span snapshots (default OK when unset, per spec).
type Status struct {
	Code        StatusCode
	Description string
}
