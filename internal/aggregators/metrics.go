package aggregators

import (
	"tracking-pixel/internal/shared/metrics"
)

// metricAggregateWritesTotal counts settled aggregate writes.
//
// The operation label is the facet type for counter increments ("daily", "page", "os",
// "browser", "device") or "recent_event" for recent-event inserts. Failures are never retried,
// so the failure rate is the undercount rate of the dashboard.
//
// The mode label is "event" for single-record updates and "batch" for consumer batches.
var (
	metricAggregateWritesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "writes_total",
		},
		[]string{"mode", "operation", metrics.FieldResult},
	)
)
