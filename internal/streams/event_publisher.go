package streams

import (
	"context"

	"tracking-pixel/internal/models"
	"tracking-pixel/internal/shared/metrics"
)

// EventPublisher appends one event to the durable stream, partitioned by request id.
// It makes exactly one append attempt; retry policy belongs to the caller.
//
//go:generate mockgen -source=event_publisher.go -destination=./mocks/event_publisher_mock.go -package=mocks
type EventPublisher interface {
	Publish(ctx context.Context, event *models.Event) error
}

type queueEventPublisher struct {
	queue *PartitionedQueue[Record]
}

// NewQueueEventPublisher publishes into the in-process queue consumed by BatchConsumer.
func NewQueueEventPublisher(queue *PartitionedQueue[Record]) EventPublisher {
	return &queueEventPublisher{queue: queue}
}

func (p *queueEventPublisher) Publish(ctx context.Context, event *models.Event) error {
	data, err := EncodeEvent(event)
	if err != nil {
		return err
	}

	err = p.queue.Publish(ctx, event.RequestID, Record{
		ID:           event.RecentEventKey(),
		PartitionKey: event.RequestID,
		Data:         data,
	})
	metricRecordPublishedTotal.WithLabelValues(driverQueue, metrics.ResultLabel(err)).Inc()
	return err
}
