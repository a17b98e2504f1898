/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package wrap

import (
	"context"

	"chainguard.dev/toolsmith/provision/tool"
)

// legacyKeys maps the alternate field-naming convention some model families
// were trained on for file tools to the canonical field names.
var legacyKeys = []struct{ legacy, canonical string }{
	{"file_path", "path"},
	{"filePath", "path"},
	{"old_str", "old_string"},
	{"new_str", "new_string"},
}

func canonicalFor(key string) (string, bool) {
	for _, k := range legacyKeys {
		if k.legacy == key {
			return k.canonical, true
		}
	}
	return "", false
}

// LegacyParams rewrites recognized legacy argument keys to their canonical
// names before the underlying tool runs. A canonical key already present is
// never overwritten.
func LegacyParams() Wrapper {
	return func(t *tool.Tool) *tool.Tool {
		next := t.Execute
		out := t.Clone()
		out.Execute = func(ctx context.Context, inv tool.Invocation) (*tool.Result, error) {
			inv.Args = remapLegacyArgs(inv.Args)
			return next(ctx, inv)
		}
		return out
	}
}

func remapLegacyArgs(args map[string]any) map[string]any {
	if args == nil {
		return nil
	}
	out := make(map[string]any, len(args))
	for k, v := range args {
		if _, legacy := canonicalFor(k); !legacy {
			out[k] = v
		}
	}
	for _, k := range legacyKeys {
		v, present := args[k.legacy]
		if !present {
			continue
		}
		if _, taken := out[k.canonical]; !taken {
			out[k.canonical] = v
		}
	}
	return out
}
