/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package policy

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/chainguard-dev/clog"
	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"
)

// NameList is a list of tool names in a configuration document.
//
// Decoding is deliberately permissive: a malformed value (a scalar where a
// list is expected, mixed types, ...) decodes to nil, meaning "no restriction",
// rather than aborting config loading.
type NameList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *NameList) UnmarshalYAML(node *yaml.Node) error {
	var names []string
	if err := node.Decode(&names); err != nil {
		*l = nil
		return nil
	}
	*l = names
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *NameList) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		*l = nil
		return nil
	}
	*l = names
	return nil
}

// ToolRules is the allow/deny slice of one configuration scope.
// An absent allow list means every tool is allowed at that scope.
type ToolRules struct {
	Allow NameList `yaml:"allow,omitempty" json:"allow,omitempty"`
	Deny  NameList `yaml:"deny,omitempty" json:"deny,omitempty"`
}

// Defined reports whether the scope declares any allow or deny entries.
func (r ToolRules) Defined() bool {
	return len(r.Allow) > 0 || len(r.Deny) > 0
}

// AgentRules is the per-agent override scope of the configuration document.
type AgentRules struct {
	Tools ToolRules `yaml:"tools,omitempty" json:"tools,omitempty"`
}

// SubagentRules configures the extra restrictions applied to subagent sessions
// on top of the fixed baseline denies.
type SubagentRules struct {
	Tools ToolRules `yaml:"tools,omitempty" json:"tools,omitempty"`
}

// Config is the tool-policy slice of the agent configuration document.
type Config struct {
	Tools     ToolRules             `yaml:"tools,omitempty" json:"tools,omitempty"`
	Agents    map[string]AgentRules `yaml:"agents,omitempty" json:"agents,omitempty"`
	Subagents SubagentRules         `yaml:"subagents,omitempty" json:"subagents,omitempty"`
}

// ConfigEnv carries environment overrides layered on top of the document.
type ConfigEnv struct {
	ExtraDeny []string `env:"TOOLSMITH_TOOLS_DENY"`
}

// LoadConfig reads the YAML configuration document at path and applies
// environment overrides. A missing file yields an empty (unrestricted) config.
func LoadConfig(ctx context.Context, path string) (*Config, error) {
	log := clog.FromContext(ctx)

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		log.With("path", path).Info("No tool policy config, using defaults")
	case err != nil:
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	var env ConfigEnv
	if err := envconfig.Process(ctx, &env); err != nil {
		return nil, fmt.Errorf("processing environment overrides: %w", err)
	}
	cfg.Tools.Deny = append(cfg.Tools.Deny, env.ExtraDeny...)

	return &cfg, nil
}
