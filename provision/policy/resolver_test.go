/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package policy_test

import (
	"testing"

	"chainguard.dev/toolsmith/provision/policy"
)

func TestAgentID(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"agent:main:main", "main"},
		{"agent:reviewer:subagent:1f0c", "reviewer"},
		{"agent:main", "main"},
		{"main", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := policy.AgentID(tt.key); got != tt.want {
			t.Errorf("AgentID(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestIsSubagent(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"agent:main:subagent:1f0c", true},
		{"agent:main:main", false},
		{"subagent:1f0c", true},
		{"agent:subagentish:main", false},
	}

	for _, tt := range tests {
		if got := policy.IsSubagent(tt.key); got != tt.want {
			t.Errorf("IsSubagent(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestResolveEffectivePolicy(t *testing.T) {
	cfg := &policy.Config{
		Tools: policy.ToolRules{
			Deny: policy.NameList{"exec"},
		},
		Agents: map[string]policy.AgentRules{
			"reviewer": {Tools: policy.ToolRules{Allow: policy.NameList{"read"}}},
			"empty":    {},
		},
	}

	tests := []struct {
		name        string
		key         string
		wantAgentID string
		tool        string
		wantOK      bool
	}{{
		name:        "global policy for unknown agent",
		key:         "agent:main:main",
		wantAgentID: "main",
		tool:        "exec",
		wantOK:      false,
	}, {
		name:        "agent policy replaces global entirely",
		key:         "agent:reviewer:main",
		wantAgentID: "reviewer",
		tool:        "read",
		wantOK:      true,
	}, {
		name:        "agent policy does not inherit global denies",
		key:         "agent:reviewer:main",
		wantAgentID: "reviewer",
		tool:        "exec",
		wantOK:      false, // not in the agent's allow list
	}, {
		name:        "agent entry with no rules falls back to global",
		key:         "agent:empty:main",
		wantAgentID: "empty",
		tool:        "exec",
		wantOK:      false,
	}, {
		name:        "agent entry with no rules allows the rest",
		key:         "agent:empty:main",
		wantAgentID: "empty",
		tool:        "read",
		wantOK:      true,
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agentID, p := policy.ResolveEffectivePolicy(cfg, tt.key)
			if agentID != tt.wantAgentID {
				t.Errorf("agent id = %q, want %q", agentID, tt.wantAgentID)
			}
			if got := p.Allows(tt.tool); got != tt.wantOK {
				t.Errorf("Allows(%q) = %v, want %v", tt.tool, got, tt.wantOK)
			}
		})
	}
}

func TestResolveSubagentPolicy(t *testing.T) {
	t.Run("baseline denies with no overrides", func(t *testing.T) {
		p := policy.ResolveSubagentPolicy(&policy.Config{})
		for _, name := range []string{"list-sessions", "history-sessions", "send-to-session", "spawn-session"} {
			if p.Allows(name) {
				t.Errorf("baseline-denied %q should not be allowed", name)
			}
		}
		if !p.Allows("read") {
			t.Error("read should remain allowed without an allow list")
		}
	})

	t.Run("configured extra denies are unioned with the baseline", func(t *testing.T) {
		p := policy.ResolveSubagentPolicy(&policy.Config{
			Subagents: policy.SubagentRules{
				Tools: policy.ToolRules{Deny: policy.NameList{"exec"}},
			},
		})
		if p.Allows("exec") {
			t.Error("configured deny should apply")
		}
		if p.Allows("spawn-session") {
			t.Error("baseline deny should still apply")
		}
	})

	t.Run("configured allow list is carried through", func(t *testing.T) {
		p := policy.ResolveSubagentPolicy(&policy.Config{
			Subagents: policy.SubagentRules{
				Tools: policy.ToolRules{Allow: policy.NameList{"read"}},
			},
		})
		if !p.Allows("read") {
			t.Error("read should be allowed")
		}
		if p.Allows("write") {
			t.Error("write is outside the allow list")
		}
	})

	t.Run("nil config still applies the baseline", func(t *testing.T) {
		p := policy.ResolveSubagentPolicy(nil)
		if p.Allows("spawn-session") {
			t.Error("baseline deny should apply with nil config")
		}
	})
}
