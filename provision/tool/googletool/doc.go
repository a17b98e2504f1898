/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package googletool exports assembled tools to the Gemini API: function
// declarations for the request, and function responses for tool results.
package googletool
