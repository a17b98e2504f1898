/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package tool

import "context"

// Invocation is a provider-independent representation of one tool call.
type Invocation struct {
	ID   string
	Name string
	Args map[string]any
}

// Handler executes a tool call and returns its result.
// A non-nil error is surfaced to the agent runtime as a failed tool call,
// never as a pipeline failure.
type Handler func(ctx context.Context, inv Invocation) (*Result, error)

// Tool describes one callable capability provisioned for a conversation turn.
// The Schema is the JSON schema for Args in wire form, as produced by the
// schema normalizer.
type Tool struct {
	Name        string
	Description string
	Schema      map[string]any
	Execute     Handler
}

// Clone returns a shallow copy of the tool. Wrappers decorate the copy so
// the original catalog entry stays untouched.
func (t *Tool) Clone() *Tool {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
