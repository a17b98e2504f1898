/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package openaitool

import (
	"chainguard.dev/toolsmith/provision/tool"
	"github.com/openai/openai-go/v2"
)

// Definition converts an assembled tool to an OpenAI function tool. The Chat
// Completions API rejects a schema that declares both a top-level type and a
// union list; the normalizer guarantees unions are already flattened.
func Definition(t *tool.Tool) openai.ChatCompletionToolUnionParam {
	return openai.ChatCompletionFunctionTool(openai.FunctionDefinitionParam{
		Name:        t.Name,
		Description: openai.String(t.Description),
		Parameters:  openai.FunctionParameters(t.Schema),
	})
}

// Definitions converts the assembled tool list, preserving order.
func Definitions(tools []*tool.Tool) []openai.ChatCompletionToolUnionParam {
	out := make([]openai.ChatCompletionToolUnionParam, 0, len(tools))
	for _, t := range tools {
		out = append(out, Definition(t))
	}
	return out
}

// ResultMessage converts a tool result to the tool message for a call.
// Images cannot travel in a Chat Completions tool message, so only the text
// blocks are carried.
func ResultMessage(callID string, r *tool.Result) openai.ChatCompletionMessageParamUnion {
	return openai.ToolMessage(r.Text(), callID)
}
