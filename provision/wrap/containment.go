/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package wrap

import (
	"context"
	"fmt"

	"chainguard.dev/toolsmith/provision/params"
	"chainguard.dev/toolsmith/provision/sandbox"
	"chainguard.dev/toolsmith/provision/tool"
	"github.com/chainguard-dev/clog"
)

// PathContainment fails an invocation before execution when its "path"
// argument would resolve outside the sandbox root. A no-op when no root is
// configured.
func PathContainment(root string, check sandbox.Containment) Wrapper {
	if root == "" {
		return nil
	}
	if check == nil {
		check = sandbox.Lexical{}
	}
	return func(t *tool.Tool) *tool.Tool {
		next := t.Execute
		out := t.Clone()
		out.Execute = func(ctx context.Context, inv tool.Invocation) (*tool.Result, error) {
			path, ok := params.String(inv.Args, "path")
			if !ok {
				return next(ctx, inv)
			}
			if _, err := check.Resolve(root, path); err != nil {
				clog.FromContext(ctx).With("tool", inv.Name).With("path", path).
					Warn("Blocked tool call outside sandbox root")
				return nil, fmt.Errorf("tool %s: %w", inv.Name, err)
			}
			return next(ctx, inv)
		}
		return out
	}
}
