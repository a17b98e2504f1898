/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package sandbox

import "chainguard.dev/toolsmith/provision/policy"

// AccessMode controls how tools may touch the sandbox workspace.
type AccessMode string

const (
	ReadWrite AccessMode = "read-write"
	ReadOnly  AccessMode = "read-only"
)

// BrowserSettings configures the browser-control tool catalog for a sandboxed
// session. The pipeline forwards these to the catalog collaborator unchanged.
type BrowserSettings struct {
	Enabled  bool   `yaml:"enabled,omitempty" json:"enabled,omitempty"`
	Headless bool   `yaml:"headless,omitempty" json:"headless,omitempty"`
	Profile  string `yaml:"profile,omitempty" json:"profile,omitempty"`
}

// Context describes the isolated execution environment of a session.
type Context struct {
	Enabled         bool             `yaml:"enabled,omitempty" json:"enabled,omitempty"`
	WorkspaceDir    string           `yaml:"workspaceDir,omitempty" json:"workspaceDir,omitempty"`
	ContainerName   string           `yaml:"containerName,omitempty" json:"containerName,omitempty"`
	WorkspaceAccess AccessMode       `yaml:"workspaceAccess,omitempty" json:"workspaceAccess,omitempty"`
	Tools           policy.ToolRules `yaml:"tools,omitempty" json:"tools,omitempty"`
	Browser         BrowserSettings  `yaml:"browser,omitempty" json:"browser,omitempty"`
}

// Active reports whether the session runs sandboxed.
func (c *Context) Active() bool {
	return c != nil && c.Enabled
}

// ReadOnlyWorkspace reports whether write access to the workspace is disabled.
func (c *Context) ReadOnlyWorkspace() bool {
	return c.Active() && c.WorkspaceAccess == ReadOnly
}

// Policy returns the sandbox tool policy scope.
func (c *Context) Policy() policy.Policy {
	if !c.Active() {
		return policy.Policy{}
	}
	return policy.FromRules(c.Tools)
}

// Root returns the sandbox workspace root, or "" when not sandboxed.
func (c *Context) Root() string {
	if !c.Active() {
		return ""
	}
	return c.WorkspaceDir
}
