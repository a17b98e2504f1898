/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package assemble

import (
	"fmt"

	"chainguard.dev/toolsmith/provision/schema"
	"chainguard.dev/toolsmith/provision/tool"
)

// Built-in tool names. Policy comparisons use these canonical forms; legacy
// aliases resolve to them in the policy package.
const (
	execToolName    = "exec"
	processToolName = "process"
	patchToolName   = "apply_patch"
)

type execArgs struct {
	Command    string `json:"command" jsonschema:"description=The shell command to run,required"`
	Timeout    int    `json:"timeout,omitempty" jsonschema:"description=Timeout in seconds before the command is killed"`
	Background bool   `json:"background,omitempty" jsonschema:"description=Run the command as a background process and return immediately"`
}

type processArgs struct {
	Action    string `json:"action" jsonschema:"enum=poll,enum=log,enum=kill,description=Operation to perform on the background process,required"`
	SessionID string `json:"session_id" jsonschema:"description=Identifier of the background process session,required"`
}

type patchArgs struct {
	Patch string `json:"patch" jsonschema:"description=The edits to apply in patch format,required"`
}

// execTool constructs the execution tool around the collaborator's handler.
// The background flag is only advertised when background execution is
// permitted by policy.
func execTool(backgroundAllowed bool, run tool.Handler) (*tool.Tool, error) {
	s, err := schema.ReflectMap[execArgs]()
	if err != nil {
		return nil, fmt.Errorf("reflecting exec schema: %w", err)
	}
	if !backgroundAllowed {
		if props, ok := s["properties"].(map[string]any); ok {
			delete(props, "background")
		}
	}
	return &tool.Tool{
		Name:        execToolName,
		Description: "Run a shell command in the session workspace and return its output.",
		Schema:      s,
		Execute:     run,
	}, nil
}

// processTool constructs the background-process management tool.
func processTool(run tool.Handler) (*tool.Tool, error) {
	s, err := schema.ReflectMap[processArgs]()
	if err != nil {
		return nil, fmt.Errorf("reflecting process schema: %w", err)
	}
	return &tool.Tool{
		Name:        processToolName,
		Description: "Poll, read logs from, or kill a background process started by exec.",
		Schema:      s,
		Execute:     run,
	}, nil
}

// patchTool constructs the patch-application tool.
func patchTool(run tool.Handler) (*tool.Tool, error) {
	s, err := schema.ReflectMap[patchArgs]()
	if err != nil {
		return nil, fmt.Errorf("reflecting patch schema: %w", err)
	}
	return &tool.Tool{
		Name:        patchToolName,
		Description: "Apply a patch-format edit to files in the workspace.",
		Schema:      s,
		Execute:     run,
	}, nil
}

// patchProviders are the model providers known to emit patch-style edits.
var patchProviders = map[string]bool{
	"openai": true,
}

// patchToolWanted gates patch tool construction: the feature flag must be on,
// the active provider must be in the fixed allow-list, and when a model
// allow-list is configured the active model must match it, either as a bare
// id or in "provider/id" form.
func patchToolWanted(cfg PatchToolConfig, provider, model string) bool {
	if !cfg.Enabled || !patchProviders[provider] {
		return false
	}
	if len(cfg.AllowModels) == 0 {
		return true
	}
	for _, allowed := range cfg.AllowModels {
		if allowed == model || allowed == provider+"/"+model {
			return true
		}
	}
	return false
}
