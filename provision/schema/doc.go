/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package schema generates and normalizes tool parameter schemas.

Tool schemas arrive from heterogeneous sources: plain object schemas, schemas
that omit the top-level object type, and tagged unions expressed as a list of
alternative object shapes under anyOf or oneOf. The target tool-calling
protocols impose incompatible constraints — one rejects schemas lacking an
explicit top-level object type, another rejects a schema that declares both a
top-level type and a union list — so Normalize rewrites every schema into the
single form all of them accept.

Union flattening merges the alternatives' property maps in declaration order.
When two alternatives disagree on a property, an enumeration on either side
wins: the merged property enumerates the union of all literal values (a const
counts as a one-value enumeration) and infers a scalar type only when every
value shares one. Otherwise the first-seen alternative's schema stands. The
required list is the union's own list when present, else the intersection of
the alternatives' lists.

The package also carries the invopop/jsonschema reflector used to derive
schemas for the built-in tools:

	args, err := schema.ReflectMap[execArgs]()
*/
package schema
