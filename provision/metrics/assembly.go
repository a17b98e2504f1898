/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Assembly provides OpenTelemetry metrics for the tool-provisioning pipeline:
// tools provisioned per assembly, tools denied per policy scope, and wrapped
// call failures. All methods are safe on a nil receiver so callers can leave
// metrics unconfigured.
type Assembly struct {
	meter        metric.Meter
	provisioned  metric.Int64Counter
	denied       metric.Int64Counter
	callFailures metric.Int64Counter
}

// NewAssembly creates an Assembly metrics instance with the specified meter
// name. Uses graceful degradation: if a counter fails to initialize, logs a
// warning and substitutes a no-op counter instead of failing entirely.
func NewAssembly(meterName string) *Assembly {
	meter := otel.Meter(meterName, metric.WithInstrumentationVersion("1.0.0"))

	provisioned, err := meter.Int64Counter("toolsmith.tools.provisioned",
		metric.WithDescription("The number of tools provisioned per assembly"),
		metric.WithUnit("{tools}"))
	if err != nil {
		slog.Warn("Failed to create provisioned counter, metrics will be disabled", "error", err, "meter", meterName)
		provisioned = noop.Int64Counter{}
	}

	denied, err := meter.Int64Counter("toolsmith.tools.denied",
		metric.WithDescription("The number of tools removed by a policy scope"),
		metric.WithUnit("{tools}"))
	if err != nil {
		slog.Warn("Failed to create denied counter, metrics will be disabled", "error", err, "meter", meterName)
		denied = noop.Int64Counter{}
	}

	callFailures, err := meter.Int64Counter("toolsmith.calls.failed",
		metric.WithDescription("The number of wrapped tool calls that failed"),
		metric.WithUnit("{calls}"))
	if err != nil {
		slog.Warn("Failed to create call failure counter, metrics will be disabled", "error", err, "meter", meterName)
		callFailures = noop.Int64Counter{}
	}

	return &Assembly{
		meter:        meter,
		provisioned:  provisioned,
		denied:       denied,
		callFailures: callFailures,
	}
}

// RecordProvisioned records the size of one assembled tool list.
func (m *Assembly) RecordProvisioned(ctx context.Context, count int, agentID string) {
	if m == nil {
		return
	}
	m.provisioned.Add(ctx, int64(count), metric.WithAttributes(
		attribute.String("agent", agentID),
	))
}

// RecordDenied records one tool removed by the named policy scope.
func (m *Assembly) RecordDenied(ctx context.Context, scope, toolName string) {
	if m == nil {
		return
	}
	m.denied.Add(ctx, 1, metric.WithAttributes(
		attribute.String("scope", scope),
		attribute.String("tool", toolName),
	))
}

// RecordCallFailure records one failed wrapped tool call.
func (m *Assembly) RecordCallFailure(ctx context.Context, toolName string) {
	if m == nil {
		return
	}
	m.callFailures.Add(ctx, 1, metric.WithAttributes(
		attribute.String("tool", toolName),
	))
}
