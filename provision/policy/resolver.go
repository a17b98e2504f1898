/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package policy

import "strings"

// Session keys follow the agent-scoping convention
// "agent:<id>:<rest>", with nested sessions carrying a "subagent" segment,
// e.g. "agent:main:subagent:1f0c...". Classification is by segment so the
// convention survives additional suffixes.

// AgentID derives the agent id from a session key. Keys that do not follow
// the scoping convention resolve to the empty id, which selects the global
// policy.
func AgentID(sessionKey string) string {
	parts := strings.Split(sessionKey, ":")
	if len(parts) >= 2 && parts[0] == "agent" {
		return parts[1]
	}
	return ""
}

// IsSubagent reports whether the session key identifies a nested session
// spawned by another agent session.
func IsSubagent(sessionKey string) bool {
	for _, part := range strings.Split(sessionKey, ":") {
		if part == "subagent" {
			return true
		}
	}
	return false
}

// subagentBaselineDeny is the fixed set of session-management capabilities a
// subagent may never use, regardless of configuration.
var subagentBaselineDeny = []string{
	"list-sessions",
	"history-sessions",
	"send-to-session",
	"spawn-session",
}

// ResolveEffectivePolicy computes the agent id and the effective allow/deny
// policy for a session.
//
// If the per-agent config defines any allow or deny entries it is used
// exclusively, never merged with the global policy: merging could silently
// re-enable a tool the global policy denies. Otherwise the global policy
// applies.
func ResolveEffectivePolicy(cfg *Config, sessionKey string) (string, Policy) {
	agentID := AgentID(sessionKey)
	if cfg == nil {
		return agentID, Policy{}
	}
	if agent, ok := cfg.Agents[agentID]; ok && agent.Tools.Defined() {
		return agentID, FromRules(agent.Tools)
	}
	return agentID, FromRules(cfg.Tools)
}

// ResolveSubagentPolicy computes the additional policy applied to subagent
/// sessions: the fixed baseline denies plus any configured extra denies, with
// the configured allow list (if any) carried through.
func ResolveSubagentPolicy(cfg *Config) Policy {
	deny := append([]string{}, subagentBaselineDeny...)
	var allow []string
	if cfg != nil {
		deny = append(deny, cfg.Subagents.Tools.Deny...)
		if cfg.Subagents.Tools.Allow != nil {
			allow = cfg.Subagents.Tools.Allow
		}
	}
	return New(allow, deny)
}
