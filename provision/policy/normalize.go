/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package policy

import "strings"

// aliases maps legacy tool names, which some model families still emit, to the
// canonical names used for every allow/deny comparison. Denying a canonical
// name therefore also blocks its aliases.
var aliases = map[string]string{
	"bash":        "exec",
	"applypatch":  "apply_patch",
	"apply-patch": "apply_patch",
}

// Normalize returns the canonical tool name: trimmed, lower-cased, and
// alias-resolved. Normalizing an already-canonical name is a no-op.
func Normalize(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[n]; ok {
		return canonical
	}
	return n
}
