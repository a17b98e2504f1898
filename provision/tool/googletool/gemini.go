/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package googletool

import (
	"fmt"

	"chainguard.dev/toolsmith/provision/tool"
	"google.golang.org/genai"
)

// Declaration converts an assembled tool to a Gemini function declaration.
// Gemini rejects schemas without an explicit top-level object type; the
// normalizer guarantees one is present.
func Declaration(t *tool.Tool) *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        t.Name,
		Description: t.Description,
		Parameters:  toSchema(t.Schema),
	}
}

// Declarations converts the assembled tool list, preserving order.
func Declarations(tools []*tool.Tool) []*genai.FunctionDeclaration {
	out := make([]*genai.FunctionDeclaration, 0, len(tools))
	for _, t := range tools {
		out = append(out, Declaration(t))
	}
	return out
}

// Response converts a tool result to a Gemini function response. Image blocks
// cannot travel in a function response, so they are summarized.
func Response(call *genai.FunctionCall, r *tool.Result) *genai.FunctionResponse {
	response := map[string]any{"output": r.Text()}
	images := 0
	for _, b := range r.Blocks {
		if b.Image != nil {
			images++
		}
	}
	if images > 0 {
		response["images"] = images
	}
	return &genai.FunctionResponse{
		ID:       call.ID,
		Name:     call.Name,
		Response: response,
	}
}

// toSchema converts a wire-form schema to the genai schema type.
func toSchema(m map[string]any) *genai.Schema {
	if m == nil {
		return nil
	}
	s := &genai.Schema{}
	if t, ok := m["type"].(string); ok {
		s.Type = schemaType(t)
	}
	if d, ok := m["description"].(string); ok {
		s.Description = d
	}
	if title, ok := m["title"].(string); ok {
		s.Title = title
	}
	if f, ok := m["format"].(string); ok {
		s.Format = f
	}
	if props, ok := m["properties"].(map[string]any); ok {
		s.Properties = make(map[string]*genai.Schema, len(props))
		for name, raw := range props {
			if ps, ok := raw.(map[string]any); ok {
				s.Properties[name] = toSchema(ps)
			}
		}
	}
	if items, ok := m["items"].(map[string]any); ok {
		s.Items = toSchema(items)
	}
	switch req := m["required"].(type) {
	case []string:
		s.Required = req
	case []any:
		for _, e := range req {
			if str, ok := e.(string); ok {
				s.Required = append(s.Required, str)
			}
		}
	}
	if enum, ok := m["enum"].([]any); ok {
		s.Enum = make([]string, 0, len(enum))
		for _, v := range enum {
			if str, ok := v.(string); ok {
				s.Enum = append(s.Enum, str)
			} else {
				s.Enum = append(s.Enum, fmt.Sprint(v))
			}
		}
	}
	return s
}

// schemaType maps a JSON Schema type name to the genai constant. Gemini uses
// uppercase type names on the wire, so a raw cast would be rejected.
func schemaType(t string) genai.Type {
	switch t {
	case "string":
		return genai.TypeString
	case "number":
		return genai.TypeNumber
	case "integer":
		return genai.TypeInteger
	case "boolean":
		return genai.TypeBoolean
	case "array":
		return genai.TypeArray
	case "object":
		return genai.TypeObject
	case "null":
		return genai.TypeNULL
	default:
		return ""
	}
}
