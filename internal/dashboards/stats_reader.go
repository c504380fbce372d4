package dashboards

import (
	"context"
	"sort"
	"time"

	"tracking-pixel/internal/models"
	"tracking-pixel/internal/shared/loggers"
	"tracking-pixel/internal/shared/metrics"
	"tracking-pixel/internal/stores"

	"github.com/sourcegraph/conc/pool"
)

const (
	TopPagesLimit     = 5
	TopBrowsersLimit  = 5
	RecentEventsLimit = 10

	operationDailyCount   = "daily_count"
	operationTopPages     = "top_pages"
	operationRecentEvents = "recent_events"
	operationBrowsers     = "browsers"
	operationDevices      = "devices"
)

//go:generate mockgen -source=stats_reader.go -destination=./mocks/stats_reader_mock.go -package=mocks
type StatsReader interface {
	// GetStats reads today's count, the top pages and browsers, every device type and the
	// newest recent events. All reads run concurrently; any failure fails the whole call.
	GetStats(ctx context.Context) (*models.Stats, error)
}

type statsReader struct {
	store stores.CounterStore
	now   func() time.Time
}

func NewStatsReader(store stores.CounterStore) StatsReader {
	return newStatsReader(store, time.Now)
}

func newStatsReader(store stores.CounterStore, now func() time.Time) *statsReader {
	return &statsReader{store: store, now: now}
}

func (r *statsReader) GetStats(ctx context.Context) (*models.Stats, error) {
	stats := &models.Stats{
		TopPages:     []models.FacetCount{},
		RecentEvents: []*models.Event{},
		Browsers:     []models.FacetCount{},
		Devices:      []models.FacetCount{},
	}

	p := pool.New().WithErrors()
	p.Go(func() error {
		count, err := r.store.GetCount(ctx, models.DailyKey(r.now()))
		if err = observeRead(ctx, operationDailyCount, err); err != nil {
			return err
		}
		stats.DailyCount = count
		return nil
	})
	p.Go(func() error {
		pages, err := r.store.ListCounters(ctx, models.FacetPage)
		if err = observeRead(ctx, operationTopPages, err); err != nil {
			return err
		}
		stats.TopPages = TopN(pages, TopPagesLimit)
		return nil
	})
	p.Go(func() error {
		events, err := r.store.ListRecentEvents(ctx, RecentEventsLimit)
		if err = observeRead(ctx, operationRecentEvents, err); err != nil {
			return err
		}
		if events != nil {
			stats.RecentEvents = events
		}
		return nil
	})
	p.Go(func() error {
		browsers, err := r.store.ListCounters(ctx, models.FacetBrowser)
		if err = observeRead(ctx, operationBrowsers, err); err != nil {
			return err
		}
		stats.Browsers = TopN(browsers, TopBrowsersLimit)
		return nil
	})
	p.Go(func() error {
		devices, err := r.store.ListCounters(ctx, models.FacetDevice)
		if err = observeRead(ctx, operationDevices, err); err != nil {
			return err
		}
		stats.Devices = TopN(devices, len(devices))
		return nil
	})

	if err := p.Wait(); err != nil {
		return nil, errInternalStatsReadFailed(err)
	}
	return stats, nil
}

func observeRead(ctx context.Context, operation string, err error) error {
	metricStatsReadTotal.WithLabelValues(operation, metrics.ResultLabel(err)).Inc()
	if err != nil {
		loggers.Ctx(ctx).Error().Err(err).Str(loggers.FieldOperation, operation).Msg("stats read failed")
	}
	return err
}

// TopN returns the n highest counts in descending order. Equal counts keep their input order.
func TopN(counts []models.FacetCount, n int) []models.FacetCount {
	sorted := make([]models.FacetCount, len(counts))
	copy(sorted, counts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Count > sorted[j].Count
	})
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}
