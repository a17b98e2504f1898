/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package sandbox describes the isolated execution environment a session may
// run in: its workspace root and access mode, its own tool policy scope, and
// the path-containment check applied to sandboxed tool calls.
package sandbox
