package streams

import (
	"context"
	"fmt"

	"tracking-pixel/internal/models"
	"tracking-pixel/internal/shared/metrics"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/firehose"
	"github.com/aws/aws-sdk-go-v2/service/firehose/types"
)

// FirehoseAPI is the subset of the Firehose client used by the publisher.
//
//go:generate mockgen -source=firehose_event_publisher.go -destination=./mocks/firehose_api_mock.go -package=mocks
type FirehoseAPI interface {
	PutRecord(ctx context.Context, params *firehose.PutRecordInput, optFns ...func(*firehose.Options)) (*firehose.PutRecordOutput, error)
}

type firehoseEventPublisher struct {
	client             FirehoseAPI
	deliveryStreamName string
}

// NewFirehoseEventPublisher publishes to a delivery stream that batches and archives on its own.
// Firehose has no partition key; the newline terminator keeps delivered objects line-delimited.
func NewFirehoseEventPublisher(client FirehoseAPI, deliveryStreamName string) EventPublisher {
	return &firehoseEventPublisher{client: client, deliveryStreamName: deliveryStreamName}
}

func (p *firehoseEventPublisher) Publish(ctx context.Context, event *models.Event) error {
	data, err := EncodeEvent(event)
	if err != nil {
		return err
	}

	_, err = p.client.PutRecord(ctx, &firehose.PutRecordInput{
		DeliveryStreamName: aws.String(p.deliveryStreamName),
		Record:             &types.Record{Data: data},
	})
	metricRecordPublishedTotal.WithLabelValues(driverFirehose, metrics.ResultLabel(err)).Inc()
	if err != nil {
		return fmt.Errorf("failed to put record to firehose stream %s: %w", p.deliveryStreamName, err)
	}
	return nil
}
