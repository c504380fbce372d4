package app

import (
	"context"
	"fmt"
	"time"

	"tracking-pixel/internal/aggregators"
	"tracking-pixel/internal/shared/awsclients"
	"tracking-pixel/internal/shared/blobstorages"
	"tracking-pixel/internal/shared/configs"
	"tracking-pixel/internal/stores"
)

// dependencies are the process-wide clients shared by the ingest path and the stream consumer.
type dependencies struct {
	aws              *awsclients.Clients
	counterStore     stores.CounterStore
	blobStorage      blobstorages.BlobStorage
	aggregateUpdater aggregators.AggregateUpdater
}

func newDependencies(ctx context.Context, config *configs.Config) (*dependencies, error) {
	deps := &dependencies{}

	if config.UsesAWS() {
		clients, err := awsclients.LoadConfig(ctx, config.AWS.Region, config.AWS.Endpoint)
		if err != nil {
			return nil, err
		}
		deps.aws = clients
	}

	// Initialize counter store
	switch config.CounterStore.Driver {
	case configs.CounterStoreDriverDynamoDB:
		deps.counterStore = stores.NewDynamoCounterStore(deps.aws.DynamoDB(), config.CounterStore.Table)
	default:
		deps.counterStore = stores.NewMemoryCounterStore()
	}

	// Initialize blob store
	switch config.BlobStorage.Driver {
	case configs.BlobStorageDriverS3:
		blobStorage, err := blobstorages.NewS3BlobStorage(deps.aws.S3(), config.BlobStorage.Bucket)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
		deps.blobStorage = blobStorage
	default:
		blobStorage, err := blobstorages.NewLocalBlobStorage(config.BlobStorage.RootDir)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
		deps.blobStorage = blobStorage
	}

	ttl := time.Duration(config.Aggregation.TTLDays) * 24 * time.Hour
	deps.aggregateUpdater = aggregators.NewAggregateUpdater(deps.counterStore, ttl)

	return deps, nil
}
