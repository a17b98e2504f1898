/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package policy resolves which tools a session may use from layered
configuration.

Three independent scopes apply to a session: the effective policy (the
per-agent override when defined, otherwise the global policy), the sandbox
policy, and — for nested sessions — the subagent policy. Scopes compose with
logical AND via AllowedBy; they are never merged into a single set, because a
merge could re-enable a tool another scope denies.

All comparisons run on canonical names (Normalize): trimmed, lower-cased, and
alias-resolved, so denying "exec" also blocks the legacy "bash" name.

Within one Policy, deny always wins over allow, and an absent allow list means
allow-all. Malformed configuration values (a scalar where a name list is
expected) decode as "no restriction" rather than failing the load.
*/
package policy
