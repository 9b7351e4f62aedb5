// Package telemetry provides OpenTelemetry instrumentation for the sync pipeline.
package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// SyncMetricsMeterName is the name used for the sync metrics meter
const SyncMetricsMeterName = "github.com/ctmis/ctgov-sync/sync"

// SyncMetrics holds the OpenTelemetry instruments for sync run metrics
type SyncMetrics struct {
	syncDuration     metric.Float64Histogram
	recordsProcessed metric.Int64Counter
	pagesFetched     metric.Int64Counter
	trialsTotal      metric.Int64Gauge
}

// NewSyncMetrics creates a new SyncMetrics instance with the given meter provider.
// If provider is nil, it returns nil (no-op metrics).
func NewSyncMetrics(provider metric.MeterProvider) (*SyncMetrics, error) {
	if provider == nil {
		return nil, nil
	}

	meter := provider.Meter(SyncMetricsMeterName)

	syncDuration, err := meter.Float64Histogram(
		"ctgov_sync_duration_seconds",
		metric.WithDescription("Duration of sync runs in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120, 300, 600),
	)
	if err != nil {
		return nil, err
	}

	recordsProcessed, err := meter.Int64Counter(
		"ctgov_sync_records_total",
		metric.WithDescription("Number of records processed per sync run, by result"),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		return nil, err
	}

	pagesFetched, err := meter.Int64Counter(
		"ctgov_sync_pages_total",
		metric.WithDescription("Number of registry pages fetched"),
		metric.WithUnit("{page}"),
	)
	if err != nil {
		return nil, err
	}

	trialsTotal, err := meter.Int64Gauge(
		"ctgov_trials_total",
		metric.WithDescription("Number of trials in the store"),
		metric.WithUnit("{trial}"),
	)
	if err != nil {
		return nil, err
	}

	return &SyncMetrics{
		syncDuration:     syncDuration,
		recordsProcessed: recordsProcessed,
		pagesFetched:     pagesFetched,
		trialsTotal:      trialsTotal,
	}, nil
}

// RecordSyncDuration records the duration of a sync run
func (m *SyncMetrics) RecordSyncDuration(ctx context.Context, duration time.Duration, success bool) {
	if m == nil || m.syncDuration == nil {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.Bool("success", success),
	}

	m.syncDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}

// RecordRecords adds to the per-result record counter. Result is one of
// inserted, updated, unchanged or dropped.
func (m *SyncMetrics) RecordRecords(ctx context.Context, result string, count int64) {
	if m == nil || m.recordsProcessed == nil {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("result", result),
	}

	m.recordsProcessed.Add(ctx, count, metric.WithAttributes(attrs...))
}

// RecordPagesFetched adds to the fetched page counter
func (m *SyncMetrics) RecordPagesFetched(ctx context.Context, count int64) {
	if m == nil || m.pagesFetched == nil {
		return
	}

	m.pagesFetched.Add(ctx, count)
}

// RecordTrialsTotal records the current number of stored trials
func (m *SyncMetrics) RecordTrialsTotal(ctx context.Context, count int64) {
	if m == nil || m.trialsTotal == nil {
		return
	}

	m.trialsTotal.Record(ctx, count)
}
