package ingestors

import (
	"context"

	"tracking-pixel/internal/aggregators"
	"tracking-pixel/internal/models"
	"tracking-pixel/internal/shared/loggers"
	"tracking-pixel/internal/shared/metrics"
	"tracking-pixel/internal/streams"

	"github.com/sourcegraph/conc/pool"
)

const (
	modePixel  = "pixel"
	modeCustom = "custom"
)

//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	// Ingest normalizes the request and fans the event out to the stream and, when inline
	// aggregation is enabled, to the counter store. It returns once every write has settled.
	// The event is always returned; the error only reports a failed stream publish.
	Ingest(ctx context.Context, req *InboundRequest) (*models.Event, error)
}

type ingestionService struct {
	normalizer EventNormalizer
	publisher  streams.EventPublisher
	updater    aggregators.AggregateUpdater
}

// NewIngestionService wires the ingest path. A nil updater leaves aggregation to the stream consumer.
func NewIngestionService(normalizer EventNormalizer, publisher streams.EventPublisher, updater aggregators.AggregateUpdater) IngestionService {
	return &ingestionService{
		normalizer: normalizer,
		publisher:  publisher,
		updater:    updater,
	}
}

func (s *ingestionService) Ingest(ctx context.Context, req *InboundRequest) (*models.Event, error) {
	logger := loggers.Ctx(ctx)
	event := s.normalizer.Normalize(ctx, req)

	mode := modeCustom
	if req.IsPixel() {
		mode = modePixel
	}

	var publishErr error
	p := pool.New()
	p.Go(func() {
		publishErr = s.publisher.Publish(ctx, event)
	})
	if s.updater != nil {
		p.Go(func() {
			settlement := s.updater.UpdateEvent(ctx, event)
			if settlement.Failed > 0 {
				logger.Warn().Err(settlement.Err).Msgf("%d of %d aggregate writes failed", settlement.Failed, settlement.Operations)
			}
		})
	}
	p.Wait()

	if publishErr != nil {
		svcErr := errInternalEventPublishFailed(publishErr)
		metricEventIngestedTotal.WithLabelValues(mode, svcErr.Code).Inc()
		logger.Error().Err(publishErr).Str(loggers.FieldErrorCode, svcErr.Code).Msg("failed to publish event")
		return event, svcErr
	}

	metricEventIngestedTotal.WithLabelValues(mode, metrics.ValueNoError).Inc()
	logger.Debug().Str(loggers.FieldRequestID, event.RequestID).Msgf("ingested %s event", mode)
	return event, nil
}
