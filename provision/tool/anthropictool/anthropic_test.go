/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package anthropictool

import (
	"testing"

	"chainguard.dev/toolsmith/provision/tool"
	"github.com/google/go-cmp/cmp"
)

func TestDefinition(t *testing.T) {
	tl := &tool.Tool{
		Name:        "read",
		Description: "Read a file from the workspace.",
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"path": map[string]any{"type": "string"},
			},
			"required": []any{"path"},
		},
	}

	got := Definition(tl)
	if got.OfTool == nil {
		t.Fatal("Definition() returned no tool variant")
	}
	if got.OfTool.Name != "read" {
		t.Errorf("Name = %q, want %q", got.OfTool.Name, "read")
	}
	if got.OfTool.Description.Value != tl.Description {
		t.Errorf("Description = %q, want %q", got.OfTool.Description.Value, tl.Description)
	}
	if want := []string{"path"}; !cmp.Equal(got.OfTool.InputSchema.Required, want) {
		t.Errorf("Required = %v, want %v", got.OfTool.InputSchema.Required, want)
	}
}

func TestDefinitionsPreservesOrder(t *testing.T) {
	tools := []*tool.Tool{
		{Name: "read", Schema: map[string]any{"type": "object"}},
		{Name: "write", Schema: map[string]any{"type": "object"}},
	}
	defs := Definitions(tools)
	if len(defs) != 2 {
		t.Fatalf("len(Definitions()) = %d, want 2", len(defs))
	}
	if defs[0].OfTool.Name != "read" || defs[1].OfTool.Name != "write" {
		t.Errorf("Definitions() order = %q, %q", defs[0].OfTool.Name, defs[1].OfTool.Name)
	}
}

func TestResultContent(t *testing.T) {
	r := &tool.Result{Blocks: []tool.Block{
		{Text: "Read image file [image/png]"},
		{Image: &tool.ImageData{Data: "aGVsbG8=", MIMEType: "image/png"}},
	}}

	blocks := ResultContent(r)
	if len(blocks) != 2 {
		t.Fatalf("len(ResultContent()) = %d, want 2", len(blocks))
	}
	if blocks[0].OfText == nil || blocks[0].OfText.Text != "Read image file [image/png]" {
		t.Errorf("blocks[0] is not the expected text block: %+v", blocks[0])
	}
	if blocks[1].OfImage == nil {
		t.Fatalf("blocks[1] is not an image block: %+v", blocks[1])
	}

	if got := ResultContent(nil); got != nil {
		t.Errorf("ResultContent(nil) = %v, want nil", got)
	}
}

func TestRequiredList(t *testing.T) {
	tests := []struct {
		name   string
		schema map[string]any
		want   []string
	}{{
		name:   "wire form",
		schema: map[string]any{"required": []any{"a", "b"}},
		want:   []string{"a", "b"},
	}, {
		name:   "typed form",
		schema: map[string]any{"required": []string{"a"}},
		want:   []string{"a"},
	}, {
		name:   "absent",
		schema: map[string]any{},
		want:   nil,
	}, {
		name:   "non-string entries skipped",
		schema: map[string]any{"required": []any{"a", 7}},
		want:   []string{"a"},
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, requiredList(tt.schema)); diff != "" {
				t.Errorf("requiredList() mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}
