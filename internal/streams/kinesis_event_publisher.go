package streams

import (
	"context"
	"fmt"

	"tracking-pixel/internal/models"
	"tracking-pixel/internal/shared/metrics"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kinesis"
)

// KinesisAPI is the subset of the Kinesis client used by the publisher.
//
//go:generate mockgen -source=kinesis_event_publisher.go -destination=./mocks/kinesis_api_mock.go -package=mocks
type KinesisAPI interface {
	PutRecord(ctx context.Context, params *kinesis.PutRecordInput, optFns ...func(*kinesis.Options)) (*kinesis.PutRecordOutput, error)
}

type kinesisEventPublisher struct {
	client     KinesisAPI
	streamName string
}

func NewKinesisEventPublisher(client KinesisAPI, streamName string) EventPublisher {
	return &kinesisEventPublisher{client: client, streamName: streamName}
}

func (p *kinesisEventPublisher) Publish(ctx context.Context, event *models.Event) error {
	data, err := EncodeEvent(event)
	if err != nil {
		return err
	}

	_, err = p.client.PutRecord(ctx, &kinesis.PutRecordInput{
		StreamName:   aws.String(p.streamName),
		PartitionKey: aws.String(event.RequestID),
		Data:         data,
	})
	metricRecordPublishedTotal.WithLabelValues(driverKinesis, metrics.ResultLabel(err)).Inc()
	if err != nil {
		return fmt.Errorf("failed to put record to kinesis stream %s: %w", p.streamName, err)
	}
	return nil
}
