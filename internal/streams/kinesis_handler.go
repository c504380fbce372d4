package streams

import (
	"context"

	"tracking-pixel/internal/shared/loggers"
	"tracking-pixel/internal/shared/ulid"

	"github.com/aws/aws-lambda-go/events"
)

// KinesisHandler adapts a Kinesis event source mapping to a BatchHandler.
type KinesisHandler struct {
	handler BatchHandler
	logger  loggers.Logger
}

func NewKinesisHandler(handler BatchHandler, logger loggers.Logger) *KinesisHandler {
	return &KinesisHandler{handler: handler, logger: logger}
}

// Handle processes one delivered batch. When the batch handler fails, every record is reported
// as a batch item failure so that the event source mapping redelivers the batch.
func (h *KinesisHandler) Handle(ctx context.Context, event events.KinesisEvent) (events.KinesisEventResponse, error) {
	ctx = h.logger.With().
		Str(loggers.FieldBatchID, ulid.NewULID()).
		Int(loggers.FieldBatchSize, len(event.Records)).
		Logger().WithContext(ctx)

	records := make([]Record, 0, len(event.Records))
	for _, r := range event.Records {
		records = append(records, Record{
			ID:           r.Kinesis.SequenceNumber,
			PartitionKey: r.Kinesis.PartitionKey,
			Data:         r.Kinesis.Data,
		})
	}

	err := h.handler.HandleBatch(ctx, records)
	metricBatchConsumedTotal.WithLabelValues(driverKinesis, errorCodeLabel(err)).Inc()
	if err == nil {
		metricRecordConsumedTotal.WithLabelValues(driverKinesis).Add(float64(len(records)))
		return events.KinesisEventResponse{}, nil
	}

	loggers.Ctx(ctx).Error().Err(err).Msg("kinesis batch failed, requesting redelivery")
	failures := make([]events.KinesisBatchItemFailure, 0, len(records))
	for _, record := range records {
		failures = append(failures, events.KinesisBatchItemFailure{ItemIdentifier: record.ID})
	}
	return events.KinesisEventResponse{BatchItemFailures: failures}, nil
}
