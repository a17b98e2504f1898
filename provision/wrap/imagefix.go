/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package wrap

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"chainguard.dev/toolsmith/provision/tool"
	"github.com/chainguard-dev/clog"
)

var (
	// ErrEmptyImage is returned when a tool reports an image block with no
	// payload.
	ErrEmptyImage = errors.New("image payload is empty")

	// ErrNotAnImage is returned when the sniffed media type of an image
	// block's payload is not an image type at all.
	ErrNotAnImage = errors.New("file content is not an image")
)

// sniffBudget bounds how many base64 characters of the payload are decoded
// for media-type sniffing.
const sniffBudget = 256

// ImageHeader is the text block a file-read tool emits alongside an image
// block. ImageCorrection rewrites it when the declared media type is wrong.
func ImageHeader(mimeType string) string {
	return fmt.Sprintf("Read image file [%s]", mimeType)
}

// ImageCorrection verifies, after a file-read-style tool returns, that an
// image block's declared media type matches its payload. The sniffed type
// wins a disagreement; a payload that is conclusively not an image fails the
// call.
func ImageCorrection() Wrapper {
	return func(t *tool.Tool) *tool.Tool {
		next := t.Execute
		out := t.Clone()
		out.Execute = func(ctx context.Context, inv tool.Invocation) (*tool.Result, error) {
			res, err := next(ctx, inv)
			if err != nil || res == nil {
				return res, err
			}
			return correctImage(ctx, inv, res)
		}
		return out
	}
}

func correctImage(ctx context.Context, inv tool.Invocation, res *tool.Result) (*tool.Result, error) {
	idx := -1
	for i, b := range res.Blocks {
		if b.Image != nil {
			idx = i
			break
		}
	}
	if idx < 0 {
		return res, nil
	}

	img := res.Blocks[idx].Image
	if img.Data == "" {
		return nil, fmt.Errorf("tool %s: %w", inv.Name, ErrEmptyImage)
	}

	sniffed, ok := sniffMediaType(img.Data)
	if !ok {
		// Inconclusive: leave the block untouched.
		return res, nil
	}
	if !strings.HasPrefix(sniffed, "image/") {
		return nil, fmt.Errorf("tool %s: declared %s, sniffed %s: %w", inv.Name, img.MIMEType, sniffed, ErrNotAnImage)
	}
	if sniffed == img.MIMEType {
		return res, nil
	}

	clog.FromContext(ctx).With("tool", inv.Name).
		With("declared", img.MIMEType).With("sniffed", sniffed).
		Info("Correcting image media type")

	out := &tool.Result{Blocks: make([]tool.Block, len(res.Blocks))}
	copy(out.Blocks, res.Blocks)
	out.Blocks[idx] = tool.ImageBlock(img.Data, sniffed)
	header := ImageHeader(img.MIMEType)
	for i, b := range out.Blocks {
		if b.Image == nil && b.Text == header {
			out.Blocks[i] = tool.TextBlock(ImageHeader(sniffed))
		}
	}
	return out, nil
}

// sniffMediaType decodes at most sniffBudget characters of the base64 payload
// (trimmed to a multiple of 4) and sniffs the media type of the prefix.
// Returns ok=false when sniffing is inconclusive.
func sniffMediaType(data string) (string, bool) {
	prefix := data
	if len(prefix) > sniffBudget {
		prefix = prefix[:sniffBudget]
	}
	prefix = prefix[:len(prefix)-len(prefix)%4]
	decoded, err := base64.StdEncoding.DecodeString(prefix)
	if err != nil || len(decoded) == 0 {
		return "", false
	}
	sniffed := http.DetectContentType(decoded)
	if sniffed == "application/octet-stream" {
		return "", false
	}
	// DetectContentType appends charset parameters to text types.
	if mediaType, _, found := strings.Cut(sniffed, ";"); found {
		sniffed = strings.TrimSpace(mediaType)
	}
	return sniffed, true
}
