package insights

import (
	"outlet-analytics/internal/shared/metrics"
)

var (
	metricComputationsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubInsights,
			Name:      "computations_total",
		},
		[]string{"time_range", "status"},
	)

	metricComputationDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubInsights,
			Name:      "computation_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{"time_range"},
	)
)
