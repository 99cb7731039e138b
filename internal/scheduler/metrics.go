package scheduler

import (
	"outlet-analytics/internal/shared/metrics"
)

var (
	metricFleetRunsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubScheduler,
			Name:      "fleet_runs_total",
		},
		[]string{"time_range", "status"},
	)

	metricFleetRunsSkippedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubScheduler,
			Name:      "fleet_runs_skipped_total",
		},
		[]string{"time_range"},
	)

	metricFallbackReplayedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubScheduler,
			Name:      "fallback_replayed_total",
		},
	)

	metricFallbackRequeuedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubScheduler,
			Name:      "fallback_requeued_total",
		},
	)
)
