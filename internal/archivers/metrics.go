package archivers

import (
	"tracking-pixel/internal/shared/metrics"
)

var (
	// metricBatchArchivedTotal counts archive attempts by result.
	metricBatchArchivedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubArchive,
			Name:      "batch_archived_total",
		},
		[]string{metrics.FieldResult},
	)

	// metricRecordArchivedTotal counts records written into archive blobs.
	metricRecordArchivedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubArchive,
			Name:      "record_archived_total",
		},
	)
)
