/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package tool

import "strings"

// Block is one content block in a tool result. Exactly one of Text or Image
// is populated.
type Block struct {
	Text  string
	Image *ImageData
}

// ImageData carries a base64-encoded image payload and its declared media type.
type ImageData struct {
	Data     string
	MIMEType string
}

// Result is the ordered sequence of content blocks a tool call produced.
type Result struct {
	Blocks []Block
}

// TextBlock builds a text content block.
func TextBlock(s string) Block {
	return Block{Text: s}
}

// ImageBlock builds an image content block from a base64 payload.
func ImageBlock(data, mimeType string) Block {
	return Block{Image: &ImageData{Data: data, MIMEType: mimeType}}
}

// TextResult builds a result holding a single text block.
func TextResult(s string) *Result {
	return &Result{Blocks: []Block{TextBlock(s)}}
}

// Text concatenates the text blocks of the result, newline separated.
func (r *Result) Text() string {
	if r == nil {
		return ""
	}
	parts := make([]string, 0, len(r.Blocks))
	for _, b := range r.Blocks {
		if b.Image == nil {
			parts = append(parts, b.Text)
		}
	}
	return strings.Join(parts, "\n")
}
