/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package sandbox

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrPathEscapesRoot is returned when a tool invocation's path would resolve
// outside the sandbox workspace root.
var ErrPathEscapesRoot = errors.New("path escapes sandbox root")

// Containment checks that a path stays inside a root directory. The check
// must be bounded: it runs before every sandboxed tool call.
type Containment interface {
	Resolve(root, path string) (string, error)
}

// Lexical is a purely lexical Containment: it resolves the path against the
// root without touching the filesystem, so it cannot block and needs no
// symlink handling (the sandbox mounts the workspace without symlinks out of
// the root).
type Lexical struct{}

// Resolve implements Containment.
func (Lexical) Resolve(root, path string) (string, error) {
	if root == "" {
		return path, nil
	}
	resolved := path
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(root, resolved)
	}
	resolved = filepath.Clean(resolved)
	rel, err := filepath.Rel(root, resolved)
	if err != nil {
		return "", fmt.Errorf("resolving %q against %q: %w", path, root, ErrPathEscapesRoot)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%q resolves outside %q: %w", path, root, ErrPathEscapesRoot)
	}
	return resolved, nil
}
