/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package tool defines the provider-independent tool record used throughout the
provisioning pipeline.

A Tool carries a name, a description, a wire-form JSON parameter schema, and
an execute entry point. Tools are created by tool-source collaborators, pass
through policy gating, schema normalization, and capability wrapping during
assembly, and the final ordered list is handed to the agent runtime.

Results are ordered sequences of content blocks, each either text or a
base64-encoded image:

	res := &tool.Result{Blocks: []tool.Block{
		tool.TextBlock("Read image file [image/png]"),
		tool.ImageBlock(payload, "image/png"),
	}}

The provider subpackages (anthropictool, googletool, openaitool) export
assembled tools to the respective SDK wire types.
*/
package tool
