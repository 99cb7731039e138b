package ingestors

import (
	"outlet-analytics/internal/shared/metrics"
)

const (
	outcomeSuccess   = "success"
	outcomeDuplicate = "duplicate"
	outcomeDropped   = "dropped"
	outcomeFallback  = "fallback"
	outcomeFailed    = "failed"
	outcomeUnknown   = "unknown"
)

var (
	metricBatchIngestedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "batch_ingested_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricEventsProcessedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "events_processed_total",
		},
		[]string{"outcome"},
	)

	metricFallbackWrittenTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "fallback_written_total",
		},
		[]string{"category"},
	)

	metricCounterUpdateFailedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "counter_update_failed_total",
		},
		[]string{"collection"},
	)

	metricCounterUpdateDroppedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "counter_update_dropped_total",
		},
		[]string{"collection"},
	)
)
