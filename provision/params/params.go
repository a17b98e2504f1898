/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package params

import "fmt"

// Get extracts a required argument from an invocation's args with type safety.
// Returns an error if the argument is missing or cannot be converted to T.
func Get[T any](args map[string]any, name string) (T, error) {
	var zero T

	value, exists := args[name]
	if !exists {
		return zero, fmt.Errorf("%s parameter is required", name)
	}

	if v, ok := value.(T); ok {
		return v, nil
	}

	if v, ok := convertNumeric[T](value); ok {
		return v, nil
	}

	return zero, fmt.Errorf("%s parameter must be of type %T, got %T", name, zero, value)
}

// Default extracts an optional argument, returning def when it is absent.
// Returns an error only if the argument is present with an unconvertible type.
func Default[T any](args map[string]any, name string, def T) (T, error) {
	value, exists := args[name]
	if !exists {
		return def, nil
	}

	if v, ok := value.(T); ok {
		return v, nil
	}

	if v, ok := convertNumeric[T](value); ok {
		return v, nil
	}

	var zero T
	return zero, fmt.Errorf("%s parameter must be of type %T, got %T", name, zero, value)
}

// String extracts an optional string argument, returning ("", false) when it
// is absent or not a string. Wrappers use this for sniffing well-known keys
// without failing the call.
func String(args map[string]any, name string) (string, bool) {
	v, ok := args[name].(string)
	return v, ok
}

// convertNumeric handles common JSON numeric conversions (float64 -> int/int32/int64).
func convertNumeric[T any](value any) (T, bool) {
	var zero T
	switch any(zero).(type) {
	case int:
		if floatVal, ok := value.(float64); ok {
			return any(int(floatVal)).(T), true
		}
	case int32:
		if floatVal, ok := value.(float64); ok {
			return any(int32(floatVal)).(T), true
		}
	case int64:
		if floatVal, ok := value.(float64); ok {
			return any(int64(floatVal)).(T), true
		}
	}
	return zero, false
}
