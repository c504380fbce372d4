package ingestors

import (
	"tracking-pixel/internal/shared/metrics"
)

var (
	// metricEventIngestedTotal counts ingested events by mode ("pixel" or "custom") and error code.
	metricEventIngestedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "event_ingested_total",
		},
		[]string{"mode", metrics.FieldErrorCode},
	)

	// metricUAClassificationFailedTotal counts user agents that made the parser fail.
	metricUAClassificationFailedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "ua_classification_failed_total",
		},
	)
)
