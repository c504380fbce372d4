package consumers

import (
	"context"

	"tracking-pixel/internal/aggregators"
	"tracking-pixel/internal/archivers"
	"tracking-pixel/internal/models"
	"tracking-pixel/internal/shared/loggers"
	"tracking-pixel/internal/streams"

	"github.com/sourcegraph/conc/pool"
)

type eventBatchHandler struct {
	archiver archivers.BatchArchiver
	updater  aggregators.AggregateUpdater
}

// NewEventBatchHandler decodes stream batches, archives them and, when updater is non-nil,
// applies the batch aggregate update alongside the archive write.
func NewEventBatchHandler(archiver archivers.BatchArchiver, updater aggregators.AggregateUpdater) streams.BatchHandler {
	return &eventBatchHandler{archiver: archiver, updater: updater}
}

func (h *eventBatchHandler) HandleBatch(ctx context.Context, records []streams.Record) error {
	logger := loggers.Ctx(ctx)

	events := make([]*models.Event, 0, len(records))
	for _, record := range records {
		event, err := streams.DecodeEvent(record.Data)
		if err != nil {
			metricMalformedRecordTotal.Inc()
			logger.Warn().Err(err).Str(loggers.FieldRecordID, record.ID).Msg("skipping malformed stream record")
			continue
		}
		events = append(events, event)
	}
	if len(events) == 0 {
		return nil
	}

	var archiveErr error
	p := pool.New()
	p.Go(func() {
		_, archiveErr = h.archiver.Archive(ctx, events)
	})
	if h.updater != nil {
		p.Go(func() {
			settlement := h.updater.UpdateBatch(ctx, events)
			if settlement.Failed > 0 {
				logger.Warn().Err(settlement.Err).Msgf("%d of %d batch aggregate writes failed", settlement.Failed, settlement.Operations)
			}
		})
	}
	p.Wait()

	if archiveErr != nil {
		logger.Error().Err(archiveErr).Msg("failed to archive batch")
		return errInternalBatchArchiveFailed(archiveErr)
	}
	return nil
}
