package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"tracking-pixel/internal/aggregators"
	"tracking-pixel/internal/archivers"
	"tracking-pixel/internal/consumers"
	"tracking-pixel/internal/dashboards"
	internalhttp "tracking-pixel/internal/http"
	"tracking-pixel/internal/ingestors"
	"tracking-pixel/internal/shared/configs"
	"tracking-pixel/internal/shared/loggers"
	"tracking-pixel/internal/streams"
)

const appName = "tracking-pixel"

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	// batchConsumer is only set with the local stream driver.
	batchConsumer    streams.BatchConsumer
	backgroundCtx    context.Context
	backgroundCancel context.CancelFunc
}

// New creates and initializes a new App instance.
func New(ctx context.Context, config *configs.Config) (*App, error) {
	appLogger, err := newAppLogger(config)
	if err != nil {
		return nil, err
	}

	deps, err := newDependencies(ctx, config)
	if err != nil {
		return nil, err
	}

	// Initialize stream publisher
	var (
		publisher     streams.EventPublisher
		batchConsumer streams.BatchConsumer
	)
	switch config.Stream.Driver {
	case configs.StreamDriverKinesis:
		publisher = streams.NewKinesisEventPublisher(deps.aws.Kinesis(), config.Stream.Name)
	case configs.StreamDriverFirehose:
		publisher = streams.NewFirehoseEventPublisher(deps.aws.Firehose(), config.Stream.Name)
	default:
		streamQueue := streams.NewPartitionedQueue[streams.Record](config.Stream.Partitions)
		publisher = streams.NewQueueEventPublisher(streamQueue)

		consumerLogger := appLogger.With().Str(loggers.FieldComponent, "consumer").Logger()
		batchConsumer = streams.NewBatchConsumer(streamQueue, newEventBatchHandler(config, deps), streams.BatchConsumerOptions{
			BatchSize:     config.Stream.BatchSize,
			FlushInterval: time.Duration(config.Stream.FlushIntervalMs) * time.Millisecond,
		}, consumerLogger)
	}

	// Initialize ingestionService
	var inlineUpdater aggregators.AggregateUpdater
	if config.Aggregation.Mode == configs.AggregationModeSync {
		inlineUpdater = deps.aggregateUpdater
	}
	uaClassifier := ingestors.NewUAClassifier(config.UserAgent.DefaultDevice)
	eventNormalizer := ingestors.NewEventNormalizer(uaClassifier)
	ingestionService := ingestors.NewIngestionService(eventNormalizer, publisher, inlineUpdater)

	// Initialize dashboards
	statsReader := dashboards.NewStatsReader(deps.counterStore)
	pageRenderer, err := dashboards.NewPageRenderer(dashboards.PageOptions{
		IngestPath:   config.Ingest.Path,
		APIEndpoint:  config.Dashboard.APIEndpoint,
		PollInterval: time.Duration(config.Dashboard.PollIntervalSeconds) * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize page renderer: %w", err)
	}

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(ingestionService, statsReader, pageRenderer, internalhttp.RouterOptions{
		IngestPath:   config.Ingest.Path,
		MaxBodyBytes: config.Ingest.MaxBodyBytes,
		CORSOrigin:   config.Ingest.CORSOrigin,
	}, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:        config,
		appLogger:     appLogger,
		server:        server,
		batchConsumer: batchConsumer,
	}, nil
}

// Handler exposes the HTTP routing tree, mainly for in-process end-to-end tests.
func (app *App) Handler() http.Handler {
	return app.server.Handler
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting %s service on port %d (log_level=%s, aggregation_mode=%s, stream_driver=%s, counter_store=%s, blob_storage=%s)",
			appName,
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Aggregation.Mode,
			app.config.Stream.Driver,
			app.config.CounterStore.Driver,
			app.config.BlobStorage.Driver)

	app.StartBackground()

	return app.server.ListenAndServe()
}

// StartBackground starts the in-process stream consumer when the local stream driver is used.
func (app *App) StartBackground() {
	if app.batchConsumer == nil || app.backgroundCancel != nil {
		return
	}
	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.batchConsumer.Start(app.backgroundCtx)
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	app.StopBackground()
	return nil
}

// StopBackground flushes buffered stream records and waits for the consumer to exit.
func (app *App) StopBackground() {
	if app.batchConsumer == nil {
		return
	}
	// Stop drains and flushes before the context is cancelled
	app.batchConsumer.Stop()
	if app.backgroundCancel != nil {
		app.backgroundCancel()
	}
	app.appLogger.Info().Msg("Background consumer stopped")
}

// NewStreamHandler builds the Kinesis batch handler run by the consumer function.
func NewStreamHandler(ctx context.Context, config *configs.Config) (*streams.KinesisHandler, error) {
	appLogger, err := newAppLogger(config)
	if err != nil {
		return nil, err
	}

	deps, err := newDependencies(ctx, config)
	if err != nil {
		return nil, err
	}

	consumerLogger := appLogger.With().Str(loggers.FieldComponent, "consumer").Logger()
	return streams.NewKinesisHandler(newEventBatchHandler(config, deps), consumerLogger), nil
}

func newAppLogger(config *configs.Config) (loggers.Logger, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return appLogger, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return appLogger.With().Str(loggers.FieldApp, appName).Logger(), nil
}

// newEventBatchHandler archives every batch and, in batch mode, also applies the batch aggregate update.
func newEventBatchHandler(config *configs.Config, deps *dependencies) streams.BatchHandler {
	var batchUpdater aggregators.AggregateUpdater
	if config.Aggregation.Mode == configs.AggregationModeBatch {
		batchUpdater = deps.aggregateUpdater
	}
	archiver := archivers.NewBatchArchiver(deps.blobStorage)
	return consumers.NewEventBatchHandler(archiver, batchUpdater)
}
