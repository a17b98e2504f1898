/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package schema

import (
	"context"
	"sort"
)

// Normalize rewrites a tool parameter schema into the provider-portable form
// every target tool-calling protocol accepts:
//
//   - an object schema stays as-is,
//   - an object-shaped schema with no explicit top-level type gains
//     "type": "object",
//   - a tagged union (anyOf/oneOf) is flattened to a single object schema,
//   - anything else (e.g. a no-argument tool) passes through unchanged.
//
// The scrubber runs after every rule; a nil scrubber skips scrubbing.
func Normalize(ctx context.Context, s map[string]any, scrub Scrubber) (map[string]any, error) {
	out := s
	if alts := unionAlternatives(s); alts != nil {
		out = flattenUnion(s, alts)
	} else if _, typed := s["type"]; !typed && objectShaped(s) {
		out = clone(s)
		out["type"] = "object"
	}
	if scrub == nil {
		return out, nil
	}
	return scrub.Scrub(ctx, out)
}

// unionAlternatives returns the alternative object shapes of a tagged union
// schema, or nil when the schema is not a union.
func unionAlternatives(s map[string]any) []map[string]any {
	for _, key := range []string{"anyOf", "oneOf"} {
		raw, ok := s[key].([]any)
		if !ok || len(raw) == 0 {
			continue
		}
		alts := make([]map[string]any, 0, len(raw))
		for _, a := range raw {
			if m, ok := a.(map[string]any); ok {
				alts = append(alts, m)
			}
		}
		if len(alts) > 0 {
			return alts
		}
	}
	return nil
}

// objectShaped reports whether a schema without an explicit type is still
// recognizably an object: it declares properties or a required list.
func objectShaped(s map[string]any) bool {
	if _, ok := s["properties"]; ok {
		return true
	}
	_, ok := s["required"]
	return ok
}

// flattenUnion merges the alternatives of a tagged union into one object
// schema. Property maps are unioned in declaration order; the first-seen
// schema wins a conflict unless either side is an enumeration, in which case
// the literal values merge (see mergeProperty).
func flattenUnion(s map[string]any, alts []map[string]any) map[string]any {
	out := map[string]any{"type": "object"}

	props := map[string]any{}
	for _, alt := range alts {
		altProps, ok := alt["properties"].(map[string]any)
		if !ok {
			continue
		}
		for _, name := range sortedKeys(altProps) {
			ps, ok := altProps[name].(map[string]any)
			if !ok {
				continue
			}
			if existing, seen := props[name].(map[string]any); seen {
				props[name] = mergeProperty(existing, ps)
			} else {
				props[name] = clone(ps)
			}
		}
	}
	if len(props) > 0 {
		out["properties"] = props
	}

	// A top-level required list on the union itself is authoritative;
	// otherwise a property is required only if every alternative that
	// defines object properties lists it.
	if _, ok := stringList(s["required"]); ok {
		out["required"] = s["required"]
	} else if req := requiredIntersection(alts); len(req) > 0 {
		wire := make([]any, 0, len(req))
		for _, n := range req {
			wire = append(wire, n)
		}
		out["required"] = wire
	}

	for _, key := range []string{"title", "description"} {
		if v, ok := s[key].(string); ok && v != "" {
			out[key] = v
		}
	}

	return out
}

// mergeProperty resolves two conflicting schemas for the same property across
// union alternatives.
func mergeProperty(first, second map[string]any) map[string]any {
	valuesA := literalValues(first)
	valuesB := literalValues(second)
	if valuesA == nil && valuesB == nil {
		// Neither side enumerates literal values: first-seen wins.
		return first
	}

	merged := map[string]any{}
	values := unionValues(valuesA, valuesB)
	merged["enum"] = values
	if t := commonScalarType(values); t != "" {
		merged["type"] = t
	}
	for _, key := range []string{"title", "description", "default"} {
		for _, src := range []map[string]any{first, second} {
			if v, ok := src[key]; ok && v != nil && v != "" {
				merged[key] = v
				break
			}
		}
	}
	return merged
}

// literalValues returns the literal values a property schema enumerates: its
// enum list, or its const as a one-value enumeration. Nil means the property
// is not an enumeration.
func literalValues(s map[string]any) []any {
	if vals, ok := s["enum"].([]any); ok {
		return vals
	}
	if c, ok := s["const"]; ok && c != nil {
		return []any{c}
	}
	return nil
}

func unionValues(a, b []any) []any {
	out := make([]any, 0, len(a)+len(b))
	seen := make(map[any]bool, len(a)+len(b))
	for _, v := range a {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	for _, v := range b {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// commonScalarType infers a single JSON scalar type shared by every value,
// or "" when the values are heterogeneous.
func commonScalarType(values []any) string {
	t := ""
	for _, v := range values {
		var vt string
		switch v.(type) {
		case string:
			vt = "string"
		case bool:
			vt = "boolean"
		case float64, int, int64:
			vt = "number"
		default:
			return ""
		}
		if t == "" {
			t = vt
		} else if t != vt {
			return ""
		}
	}
	return t
}

// requiredIntersection computes the names required by every alternative that
// defines object properties, preserving the first alternative's order.
func requiredIntersection(alts []map[string]any) []string {
	var result []string
	first := true
	for _, alt := range alts {
		if _, ok := alt["properties"].(map[string]any); !ok {
			continue
		}
		req, _ := stringList(alt["required"])
		if first {
			result = req
			first = false
			continue
		}
		set := make(map[string]bool, len(req))
		for _, n := range req {
			set[n] = true
		}
		kept := result[:0]
		for _, n := range result {
			if set[n] {
				kept = append(kept, n)
			}
		}
		result = kept
	}
	return result
}

func stringList(v any) ([]string, bool) {
	switch list := v.(type) {
	case []string:
		return list, true
	case []any:
		out := make([]string, 0, len(list))
		for _, e := range list {
			s, ok := e.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func clone(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
