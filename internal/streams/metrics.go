package streams

import (
	"tracking-pixel/internal/shared/metrics"
)

const (
	driverQueue    = "queue"
	driverKinesis  = "kinesis"
	driverFirehose = "firehose"
)

var (
	// metricRecordPublishedTotal counts append attempts by stream driver and result.
	metricRecordPublishedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "record_published_total",
		},
		[]string{"driver", metrics.FieldResult},
	)

	// metricBatchConsumedTotal counts delivered batches by stream driver and error code.
	metricBatchConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "batch_consumed_total",
		},
		[]string{"driver", metrics.FieldErrorCode},
	)

	// metricRecordConsumedTotal counts records handed to the batch handler.
	metricRecordConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "record_consumed_total",
		},
		[]string{"driver"},
	)
)
