/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package wrap

import "chainguard.dev/toolsmith/provision/tool"

// Wrapper decorates a tool with one cross-cutting behavior. Wrappers are
// independent and order-sensitive; Apply composes them left to right, so the
// leftmost wrapper runs outermost.
type Wrapper func(*tool.Tool) *tool.Tool

// Apply returns the tool decorated with the given wrappers. The input tool is
// never mutated.
func Apply(t *tool.Tool, wrappers ...Wrapper) *tool.Tool {
	out := t.Clone()
	for i := len(wrappers) - 1; i >= 0; i-- {
		if wrappers[i] != nil {
			out = wrappers[i](out)
		}
	}
	return out
}
