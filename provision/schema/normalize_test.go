/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package schema_test

import (
	"context"
	"encoding/json"
	"testing"

	"chainguard.dev/toolsmith/provision/schema"
	"github.com/google/go-cmp/cmp"
)

// decode builds a schema map from JSON so fixtures match what wire decoding
// actually produces (float64 numbers, []any lists).
func decode(t *testing.T, doc string) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(doc), &m); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return m
}

func TestNormalizeObjectSchemas(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		in   string
		want string
	}{{
		name: "object schema with properties is unchanged",
		in:   `{"type":"object","properties":{"path":{"type":"string"}},"required":["path"]}`,
		want: `{"type":"object","properties":{"path":{"type":"string"}},"required":["path"]}`,
	}, {
		name: "object-shaped schema gains the object type",
		in:   `{"properties":{"path":{"type":"string"}}}`,
		want: `{"type":"object","properties":{"path":{"type":"string"}}}`,
	}, {
		name: "required list alone marks the schema object-shaped",
		in:   `{"required":["path"]}`,
		want: `{"type":"object","required":["path"]}`,
	}, {
		name: "no-argument schema passes through",
		in:   `{}`,
		want: `{}`,
	}, {
		name: "non-object typed schema passes through",
		in:   `{"type":"string"}`,
		want: `{"type":"string"}`,
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := schema.Normalize(ctx, decode(t, tt.in), nil)
			if err != nil {
				t.Fatalf("Normalize: %v", err)
			}
			if diff := cmp.Diff(decode(t, tt.want), got); diff != "" {
				t.Errorf("schema mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalizeFlattensUnions(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		in   string
		want string
	}{{
		name: "conflicting enums merge to the value union",
		in: `{"anyOf":[
			{"type":"object","properties":{"action":{"type":"string","enum":["x","y"]}}},
			{"type":"object","properties":{"action":{"type":"string","enum":["y","z"]}}}]}`,
		want: `{"type":"object","properties":{"action":{"enum":["x","y","z"],"type":"string"}}}`,
	}, {
		name: "const counts as a one-value enumeration",
		in: `{"oneOf":[
			{"type":"object","properties":{"mode":{"const":"fast","description":"Fast mode"}}},
			{"type":"object","properties":{"mode":{"type":"string","enum":["slow"]}}}]}`,
		want: `{"type":"object","properties":{"mode":{"enum":["fast","slow"],"type":"string","description":"Fast mode"}}}`,
	}, {
		name: "mixed value types drop the inferred scalar type",
		in: `{"anyOf":[
			{"type":"object","properties":{"limit":{"enum":[10]}}},
			{"type":"object","properties":{"limit":{"enum":["none"]}}}]}`,
		want: `{"type":"object","properties":{"limit":{"enum":[10,"none"]}}}`,
	}, {
		name: "non-enum conflict keeps the first-seen schema",
		in: `{"anyOf":[
			{"type":"object","properties":{"target":{"type":"string","description":"first"}}},
			{"type":"object","properties":{"target":{"type":"number","description":"second"}}}]}`,
		want: `{"type":"object","properties":{"target":{"type":"string","description":"first"}}}`,
	}, {
		name: "required is the intersection across alternatives",
		in: `{"anyOf":[
			{"type":"object","properties":{"a":{"type":"string"},"b":{"type":"string"}},"required":["a","b"]},
			{"type":"object","properties":{"a":{"type":"string"}},"required":["a"]}]}`,
		want: `{"type":"object","properties":{"a":{"type":"string"},"b":{"type":"string"}},"required":["a"]}`,
	}, {
		name: "a top-level required list is kept verbatim",
		in: `{"required":["a","c"],"anyOf":[
			{"type":"object","properties":{"a":{"type":"string"}},"required":["a"]},
			{"type":"object","properties":{"c":{"type":"string"}}}]}`,
		want: `{"type":"object","properties":{"a":{"type":"string"},"c":{"type":"string"}},"required":["a","c"]}`,
	}, {
		name: "union title and description are preserved",
		in: `{"title":"Act","description":"Pick one","oneOf":[
			{"type":"object","properties":{"a":{"type":"string"}}},
			{"type":"object","properties":{"b":{"type":"string"}}}]}`,
		want: `{"type":"object","title":"Act","description":"Pick one","properties":{"a":{"type":"string"},"b":{"type":"string"}}}`,
	}, {
		name: "union with a stray top-level type is still flattened",
		in: `{"type":"object","anyOf":[
			{"type":"object","properties":{"a":{"type":"string"}}},
			{"type":"object","properties":{"b":{"type":"string"}}}]}`,
		want: `{"type":"object","properties":{"a":{"type":"string"},"b":{"type":"string"}}}`,
	}, {
		name: "properties union preserves distinct fields from all alternatives",
		in: `{"anyOf":[
			{"type":"object","properties":{"path":{"type":"string"}},"required":["path"]},
			{"type":"object","properties":{"pattern":{"type":"string"}},"required":["pattern"]}]}`,
		want: `{"type":"object","properties":{"path":{"type":"string"},"pattern":{"type":"string"}}}`,
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := schema.Normalize(ctx, decode(t, tt.in), nil)
			if err != nil {
				t.Fatalf("Normalize: %v", err)
			}
			// Enum value order matters; required order matters.
			if diff := cmp.Diff(decode(t, tt.want), got); diff != "" {
				t.Errorf("schema mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalizeScrubs(t *testing.T) {
	ctx := context.Background()

	in := decode(t, `{"$schema":"https://json-schema.org/draft/2020-12/schema",
		"type":"object","additionalProperties":false,
		"properties":{"path":{"type":"string","$id":"x"}}}`)

	got, err := schema.Normalize(ctx, in, schema.DefaultScrubber())
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	want := decode(t, `{"type":"object","properties":{"path":{"type":"string"}}}`)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("schema mismatch (-want +got):\n%s", diff)
	}

	// Scrubbing must not mutate the input.
	if _, ok := in["$schema"]; !ok {
		t.Error("input schema was mutated")
	}
}

func TestNormalizeScrubsEveryRule(t *testing.T) {
	ctx := context.Background()
	calls := 0
	counting := schema.ScrubFunc(func(_ context.Context, s map[string]any) (map[string]any, error) {
		calls++
		return s, nil
	})

	for _, doc := range []string{
		`{"type":"object","properties":{}}`,
		`{"properties":{}}`,
		`{"anyOf":[{"type":"object","properties":{"a":{"type":"string"}}}]}`,
		`{}`,
	} {
		if _, err := schema.Normalize(ctx, decode(t, doc), counting); err != nil {
			t.Fatalf("Normalize(%s): %v", doc, err)
		}
	}
	if calls != 4 {
		t.Errorf("scrubber ran %d times, want 4", calls)
	}
}
