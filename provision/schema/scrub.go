/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package schema

import "context"

// Scrubber removes provider-hostile keywords from a wire-form schema. The
// normalizer invokes it after every rewrite rule; implementations must not
// mutate their input.
type Scrubber interface {
	Scrub(ctx context.Context, s map[string]any) (map[string]any, error)
}

// ScrubFunc adapts a function to the Scrubber interface.
type ScrubFunc func(ctx context.Context, s map[string]any) (map[string]any, error)

// Scrub implements Scrubber.
func (f ScrubFunc) Scrub(ctx context.Context, s map[string]any) (map[string]any, error) {
	return f(ctx, s)
}

// scrubbedKeywords are accepted by none or only some of the target providers
// and carry no information a tool-calling model needs.
var scrubbedKeywords = []string{
	"$schema",
	"$id",
	"$defs",
	"definitions",
	"additionalProperties",
}

// DefaultScrubber strips the standard set of provider-hostile keywords,
// recursing into properties and items.
func DefaultScrubber() Scrubber {
	return ScrubFunc(func(ctx context.Context, s map[string]any) (map[string]any, error) {
		return scrubKeywords(s), nil
	})
}

func scrubKeywords(s map[string]any) map[string]any {
	if s == nil {
		return nil
	}
	out := make(map[string]any, len(s))
	for k, v := range s {
		out[k] = v
	}
	for _, k := range scrubbedKeywords {
		delete(out, k)
	}
	if props, ok := out["properties"].(map[string]any); ok {
		scrubbed := make(map[string]any, len(props))
		for name, raw := range props {
			if ps, ok := raw.(map[string]any); ok {
				scrubbed[name] = scrubKeywords(ps)
			} else {
				scrubbed[name] = raw
			}
		}
		out["properties"] = scrubbed
	}
	if items, ok := out["items"].(map[string]any); ok {
		out["items"] = scrubKeywords(items)
	}
	return out
}
