/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package wrap

import (
	"context"
	"errors"
	"fmt"

	"chainguard.dev/toolsmith/provision/tool"
)

// ErrCancelled is returned when the combined cancellation source is already
// signalled at call time, so the runtime can suppress retries instead of
// treating the failure as transient.
var ErrCancelled = errors.New("tool call cancelled")

// Cancellation binds every call of the wrapped tool to the assembly-level
// context: cancellation of either the per-call context or the assembly
// context cancels the call. An already-signalled source fails the call
// before the underlying tool runs.
func Cancellation(assembly context.Context) Wrapper {
	if assembly == nil {
		return nil
	}
	return func(t *tool.Tool) *tool.Tool {
		next := t.Execute
		out := t.Clone()
		out.Execute = func(ctx context.Context, inv tool.Invocation) (*tool.Result, error) {
			linked, cancel := linkContexts(ctx, assembly)
			defer cancel()
			if assembly.Err() != nil || linked.Err() != nil {
				return nil, fmt.Errorf("tool %s: %w", inv.Name, ErrCancelled)
			}
			return next(linked, inv)
		}
		return out
	}
}

// linkContexts derives a context from call that is additionally cancelled
// when assembly is cancelled, without coupling the two sources' lifetimes.
func linkContexts(call, assembly context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancelCause(call)
	stop := context.AfterFunc(assembly, func() {
		cancel(context.Cause(assembly))
	})
	return ctx, func() {
		stop()
		cancel(nil)
	}
}
