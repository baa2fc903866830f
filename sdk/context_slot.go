// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016 Datadog, Inc.

package sdk

import (
	"context"

	core "github.com/tracecore/tracecore"
)

// ContextSlot is the ambient "current span" collaborator the core assumes:
// a get_current plus a push/pop with scoped release. It is specified only
// by this interface — spec.md leaves the storage mechanism (thread-local,
// task-local, explicit passing) to the implementor. This SDK backs it with
// context.Context, the idiomatic Go carrier.
type ContextSlot interface {
	Current(ctx context.Context) core.Span
	WithSpan(ctx context.Context, span core.Span) context.Context
}

type spanContextKey struct{}

// contextSlot is the context.Context-backed ContextSlot implementation.
type contextSlot struct{}

func (contextSlot) Current(ctx context.Context) core.Span {
	if ctx == nil {
		return nil
	}
	s, _ := ctx.Value(spanContextKey{}).(core.Span)
	return s
}

func (contextSlot) WithSpan(ctx context.Context, span core.Span) context.Context {
	return context.WithValue(ctx, spanContextKey{}, span)
}

// DefaultContextSlot is the context.Context-backed ContextSlot.
var DefaultContextSlot ContextSlot = contextSlot{}

// Scope is returned alongside the scoped context.Context by Tracer.WithSpan.
// Release returns the context.Context that was current before the scope
// was entered, so a caller can restore it on every exit path:
//
//	scoped, scope := tracer.WithSpan(ctx, span)
//	defer func() { ctx = scope.Release() }()
//	// ... use scoped ...
type Scope struct {
	prior context.Context
}

// Release returns the prior context.Context, undoing WithSpan's push.
func (s Scope) Release() context.Context {
	return s.prior
}
