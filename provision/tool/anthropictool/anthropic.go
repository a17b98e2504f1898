/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package anthropictool

import (
	"chainguard.dev/toolsmith/provision/tool"
	"github.com/anthropics/anthropic-sdk-go"
)

// Definition converts an assembled tool to an Anthropic tool definition.
// The normalizer guarantees an object schema, so properties and required can
// be lifted directly.
func Definition(t *tool.Tool) anthropic.ToolUnionParam {
	p := anthropic.ToolParam{
		Name:        t.Name,
		Description: anthropic.String(t.Description),
		InputSchema: anthropic.ToolInputSchemaParam{
			Type:       "object",
			Properties: t.Schema["properties"],
			Required:   requiredList(t.Schema),
		},
	}
	return anthropic.ToolUnionParam{OfTool: &p}
}

// Definitions converts the assembled tool list, preserving order.
func Definitions(tools []*tool.Tool) []anthropic.ToolUnionParam {
	out := make([]anthropic.ToolUnionParam, 0, len(tools))
	for _, t := range tools {
		out = append(out, Definition(t))
	}
	return out
}

// ResultContent converts a tool result to Anthropic content blocks.
func ResultContent(r *tool.Result) []anthropic.ContentBlockParamUnion {
	if r == nil {
		return nil
	}
	out := make([]anthropic.ContentBlockParamUnion, 0, len(r.Blocks))
	for _, b := range r.Blocks {
		if b.Image != nil {
			out = append(out, anthropic.NewImageBlockBase64(b.Image.MIMEType, b.Image.Data))
		} else {
			out = append(out, anthropic.NewTextBlock(b.Text))
		}
	}
	return out
}

func requiredList(schema map[string]any) []string {
	switch req := schema["required"].(type) {
	case []string:
		return req
	case []any:
		out := make([]string, 0, len(req))
		for _, e := range req {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
