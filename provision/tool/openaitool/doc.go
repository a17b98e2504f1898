/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package openaitool exports assembled tools to the OpenAI Chat Completions
// API: function tool definitions for the request, and tool messages for
// results.
package openaitool
