/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package params provides type-safe argument extraction from tool invocations.

JSON numbers arrive as float64; Get and Default transparently convert them to
int, int32, and int64 so handlers can declare the type they actually want:

	timeout, err := params.Default(inv.Args, "timeout", 60)
*/
package params
