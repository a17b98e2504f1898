/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package assemble

import (
	"context"

	"chainguard.dev/toolsmith/provision/sandbox"
	"chainguard.dev/toolsmith/provision/tool"
)

// CodingParams parameterizes the coding-tool catalog. Sources use the sandbox
// descriptor to substitute sandbox-aware or workspace-aware read/write/edit
// variants.
type CodingParams struct {
	WorkspaceDir string
	Sandbox      *sandbox.Context
}

// ExecParams parameterizes the execution and background-process tools.
type ExecParams struct {
	WorkspaceDir string
	Sandbox      *sandbox.Context

	// BackgroundAllowed is derived from the effective policy chain.
	BackgroundAllowed bool

	// ScopeKey is an opaque accounting key the runtime uses to attribute
	// spawned processes to this session.
	ScopeKey string
}

// PatchParams parameterizes the patch-application tool.
type PatchParams struct {
	WorkspaceDir string
	Sandbox      *sandbox.Context
}

// BrowserParams parameterizes the browser-control tool catalog.
type BrowserParams struct {
	Sandbox *sandbox.Context
	Browser sandbox.BrowserSettings
}

// MessagingParams parameterizes the messaging tool catalog.
type MessagingParams struct {
	SessionKey string

	// ReplyToThread is an externally owned mutable flag used by the chat
	// threading behavior. The pipeline forwards it and never reads or
	// mutates it.
	ReplyToThread *bool
}

// Sources provides the tool catalogs and handlers the assembler composes.
// Catalog sources return complete tool records; the execution, background and
// patch collaborators return only handlers, since the pipeline constructs
// those tool definitions itself.
//
// Coding, Exec and BackgroundProcess are required; the rest are optional.
type Sources struct {
	// Coding returns the base coding tools (read, write, edit, ...).
	Coding func(ctx context.Context, p CodingParams) ([]*tool.Tool, error)

	// Exec returns the handler for the execution tool.
	Exec func(ctx context.Context, p ExecParams) (tool.Handler, error)

	// BackgroundProcess returns the handler for the background-process tool.
	BackgroundProcess func(ctx context.Context, p ExecParams) (tool.Handler, error)

	// ApplyPatch returns the handler for the patch-application tool.
	ApplyPatch func(ctx context.Context, p PatchParams) (tool.Handler, error)

	// Browser returns provider-specific browser-control tools.
	Browser func(ctx context.Context, p BrowserParams) ([]*tool.Tool, error)

	// Messaging returns domain-specific messaging tools.
	Messaging func(ctx context.Context, p MessagingParams) ([]*tool.Tool, error)
}
