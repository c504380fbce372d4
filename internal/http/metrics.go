package http

import (
	"tracking-pixel/internal/shared/metrics"
)

// routeUnmatched labels requests that no route matched, keeping scanner traffic out of the path label.
const routeUnmatched = "unmatched"

var (
	// metricHTTPRequestsTotal counts requests by route pattern; pixel loads and custom events share the ingest route.
	metricHTTPRequestsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "requests_total",
		},
		[]string{"method", "route", "status", metrics.FieldErrorCode},
	)

	metricHTTPRequestDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "request_latency",
			Buckets:   metrics.DefBuckets,
		},
		[]string{"method", "route", "status", metrics.FieldErrorCode},
	)

	// metricHTTPResponseBytes is dominated by the 43-byte pixel on the ingest route.
	metricHTTPResponseBytes = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "response_bytes",
			Buckets:   []float64{0, 64, 512, 4096, 32768, 262144},
		},
		[]string{"method", "route"},
	)
)
