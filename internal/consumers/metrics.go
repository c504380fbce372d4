package consumers

import (
	"tracking-pixel/internal/shared/metrics"
)

var (
	// metricMalformedRecordTotal counts stream records that could not be decoded and were skipped.
	metricMalformedRecordTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "malformed_record_total",
		},
	)
)
