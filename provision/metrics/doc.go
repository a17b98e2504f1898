/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package metrics provides OpenTelemetry counters for the tool-provisioning
// pipeline, with graceful degradation to no-op counters when instrument
// creation fails.
package metrics
