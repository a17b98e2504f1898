/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package policy

// Policy is one immutable allow/deny scope. A nil Allow set means every tool
// is allowed at this scope; Deny always wins over Allow.
//
// Cross-scope composition (global/agent, sandbox, subagent) is a logical AND
// over independent Policy values, never a merge: a tool survives only if every
// applicable policy allows it.
type Policy struct {
	allow map[string]bool // nil means allow-all
	deny  map[string]bool
}

// FromRules builds a Policy from configured rules, normalizing every entry so
// allow/deny comparisons cannot be bypassed via legacy names.
func FromRules(r ToolRules) Policy {
	return New(r.Allow, r.Deny)
}

// New builds a Policy from raw allow and deny name lists. A nil allow list
// means allow-all; an empty non-nil allow list allows nothing.
func New(allow, deny []string) Policy {
	p := Policy{deny: normalizeSet(deny)}
	if allow != nil {
		p.allow = normalizeSet(allow)
	}
	return p
}

func normalizeSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[Normalize(n)] = true
	}
	return set
}

// Allows reports whether the named tool passes this policy. The name is
// normalized before comparison; deny is checked first.
func (p Policy) Allows(name string) bool {
	n := Normalize(name)
	if p.deny[n] {
		return false
	}
	if p.allow == nil {
		return true
	}
	return p.allow[n]
}

// Unrestricted reports whether the policy neither restricts nor denies
// anything.
func (p Policy) Unrestricted() bool {
	return p.allow == nil && len(p.deny) == 0
}

// AllowedBy reports whether the named tool passes every one of the given
// policies: an ordered chain of independent scopes evaluated with logical AND.
func AllowedBy(name string, policies ...Policy) bool {
	for _, p := range policies {
		if !p.Allows(name) {
			return false
		}
	}
	return true
}
