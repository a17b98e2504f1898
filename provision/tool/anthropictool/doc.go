/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package anthropictool exports assembled tools to the Anthropic Messages
// API: tool definitions for the request, and result content blocks for tool
// result messages.
package anthropictool
