/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package assemble composes the ordered list of tools available to an agent
session for one conversation turn.

The pipeline, per session:

 1. Determine the execution context (sandboxed vs. direct) and workspace root.
 2. Source base coding tools, omitting the default execution tool and —
    for a read-only sandbox workspace — the write/edit tools.
 3. Construct the execution and background-process tools around the
    collaborators' handlers, parameterized by the policy-derived background
    flag and an opaque accounting scope key.
 4. Conditionally construct the patch-application tool (feature flag,
    provider allow-list, optional model allow-list).
 5. Append the browser and messaging catalogs.
 6. Apply the effective, sandbox, and subagent policy scopes independently;
    a tool survives only if it clears all of them.
 7. Normalize every surviving tool's schema.
 8. Bind the capability wrappers, including assembly-level cancellation.

Sourcing runs concurrently but completion is atomic: any collaborator failure
fails the whole assembly, so the caller never receives a list silently missing
a category of tools.
*/
package assemble
