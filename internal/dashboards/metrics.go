package dashboards

import (
	"tracking-pixel/internal/shared/metrics"
)

var (
	// metricStatsReadTotal counts dashboard reads by store operation and result.
	metricStatsReadTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStats,
			Name:      "read_total",
		},
		[]string{"operation", metrics.FieldResult},
	)
)
