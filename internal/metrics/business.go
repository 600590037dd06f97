package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// SessionMetrics records the outcome of session operations. Status is a short
// label such as "success", "expired" or "store_unavailable".
type SessionMetrics interface {
	RecordOperation(ctx context.Context, operation, status string)
	RecordDuration(ctx context.Context, operation string, duration time.Duration, status string)
}

type sessionMetrics struct {
	operations metric.Int64Counter
	durations  metric.Float64Histogram
}

// NewSessionMetrics creates the instruments under namespace, e.g.
// "sessionkeeper_operations_total".
func NewSessionMetrics(meterProvider metric.MeterProvider, namespace string) (SessionMetrics, error) {
	meter := meterProvider.Meter(namespace)

	operations, err := meter.Int64Counter(
		fmt.Sprintf("%s_operations", namespace),
		metric.WithDescription("Number of session operations by outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create operation counter: %w", err)
	}

	durations, err := meter.Float64Histogram(
		fmt.Sprintf("%s_operation_duration", namespace),
		metric.WithDescription("Duration of session operations"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	return &sessionMetrics{operations: operations, durations: durations}, nil
}

func (m *sessionMetrics) RecordOperation(ctx context.Context, operation, status string) {
	m.operations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("status", status),
	))
}

func (m *sessionMetrics) RecordDuration(ctx context.Context, operation string, duration time.Duration, status string) {
	m.durations.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("status", status),
	))
}

// NoOp discards everything; used when metrics are disabled.
type NoOp struct{}

func (NoOp) RecordOperation(context.Context, string, string) {}
func (NoOp) RecordDuration(context.Context, string, time.Duration, string) {}
