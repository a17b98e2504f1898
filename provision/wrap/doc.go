/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package wrap decorates tools with cross-cutting safety and compatibility
behaviors during assembly.

Each behavior is an independent Wrapper applied in a fixed order, composed as
functions over the tool record rather than through any type hierarchy:

	t = wrap.Apply(t,
		wrap.Cancellation(assemblyCtx),
		wrap.LegacyParams(),
		wrap.PathContainment(root, check),
		wrap.ImageCorrection(),
	)

Safety checks (path containment, cancellation) resolve to pass/fail before the
wrapped tool's own logic starts and are bounded: containment is lexical and
the cancellation check is a non-blocking Err inspection. Failures surface as
failed tool-call results — sentinel errors distinguish validation failures
(ErrEmptyImage, ErrNotAnImage, sandbox.ErrPathEscapesRoot) from cancellation
(ErrCancelled).
*/
package wrap
