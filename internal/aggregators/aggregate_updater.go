package aggregators

import (
	"context"
	"sync/atomic"
	"time"

	"tracking-pixel/internal/models"
	"tracking-pixel/internal/shared/loggers"
	"tracking-pixel/internal/shared/metrics"
	"tracking-pixel/internal/stores"

	"github.com/sourcegraph/conc/pool"
)

const (
	// DefaultTTL is how long counters and recent events live after their last write.
	DefaultTTL = 7 * 24 * time.Hour

	// batchRecentEvents is how many trailing records of a batch become recent events.
	batchRecentEvents = 5

	modeEvent = "event"
	modeBatch = "batch"

	operationRecentEvent = "recent_event"
)

// Settlement reports how a fan-out of aggregate writes settled. Err joins every failure.
type Settlement struct {
	Operations int
	Failed     int
	Err        error
}

// AggregateUpdater applies counter increments and recent-event inserts for ingested events.
//
// All writes of one call run concurrently and the call returns once every write has settled.
// A failed write never cancels its siblings and is not retried; failures are logged, counted
// and reported in the Settlement only.
//
//go:generate mockgen -source=aggregate_updater.go -destination=./mocks/aggregate_updater_mock.go -package=mocks
type AggregateUpdater interface {
	// UpdateEvent adds 1 to the daily counter and to every non-empty facet of the event,
	// and inserts the event as a recent event.
	UpdateEvent(ctx context.Context, event *models.Event) Settlement
	// UpdateBatch adds len(events) to the daily counter in one increment, one increment per
	// distinct facet value with its batch-local count, and inserts the last 5 events as recent events.
	UpdateBatch(ctx context.Context, events []*models.Event) Settlement
}

type aggregateUpdater struct {
	store stores.CounterStore
	ttl   time.Duration
	now   func() time.Time
}

func NewAggregateUpdater(store stores.CounterStore, ttl time.Duration) AggregateUpdater {
	return newAggregateUpdater(store, ttl, time.Now)
}

func newAggregateUpdater(store stores.CounterStore, ttl time.Duration, now func() time.Time) *aggregateUpdater {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &aggregateUpdater{store: store, ttl: ttl, now: now}
}

// writeOp is one independent aggregate write.
type writeOp struct {
	operation string
	run       func(ctx context.Context, expiresAt time.Time) error
}

func (u *aggregateUpdater) UpdateEvent(ctx context.Context, event *models.Event) Settlement {
	now := u.now()

	ops := []writeOp{
		u.increment(models.DailyKey(now), 1),
		u.putRecentEvent(event),
	}
	for _, key := range facetKeys(event) {
		ops = append(ops, u.increment(key, 1))
	}

	return u.settle(ctx, modeEvent, now.Add(u.ttl), ops)
}

func (u *aggregateUpdater) UpdateBatch(ctx context.Context, events []*models.Event) Settlement {
	if len(events) == 0 {
		return Settlement{}
	}
	now := u.now()

	ops := []writeOp{u.increment(models.DailyKey(now), int64(len(events)))}
	for _, inc := range TallyFacets(events) {
		ops = append(ops, u.increment(inc.Key, inc.Count))
	}

	recent := events
	if len(recent) > batchRecentEvents {
		recent = recent[len(recent)-batchRecentEvents:]
	}
	for _, event := range recent {
		ops = append(ops, u.putRecentEvent(event))
	}

	return u.settle(ctx, modeBatch, now.Add(u.ttl), ops)
}

func (u *aggregateUpdater) increment(key models.CounterKey, n int64) writeOp {
	return writeOp{
		operation: string(key.Facet),
		run: func(ctx context.Context, expiresAt time.Time) error {
			if err := u.store.Increment(ctx, key, n, expiresAt); err != nil {
				return errInternalCounterWriteFailed(string(key.Facet), err)
			}
			return nil
		},
	}
}

func (u *aggregateUpdater) putRecentEvent(event *models.Event) writeOp {
	return writeOp{
		operation: operationRecentEvent,
		run: func(ctx context.Context, expiresAt time.Time) error {
			if err := u.store.PutRecentEvent(ctx, event, expiresAt); err != nil {
				return errInternalRecentEventWriteFailed(err)
			}
			return nil
		},
	}
}

// settle runs every op concurrently and waits for all of them, whatever their outcome.
func (u *aggregateUpdater) settle(ctx context.Context, mode string, expiresAt time.Time, ops []writeOp) Settlement {
	logger := loggers.Ctx(ctx)

	var failed atomic.Int64
	p := pool.New().WithErrors()
	for _, op := range ops {
		p.Go(func() error {
			err := op.run(ctx, expiresAt)
			metricAggregateWritesTotal.WithLabelValues(mode, op.operation, metrics.ResultLabel(err)).Inc()
			if err != nil {
				failed.Add(1)
				logger.Warn().Err(err).Str(loggers.FieldOperation, op.operation).Msg("aggregate write failed")
			}
			return err
		})
	}
	err := p.Wait()

	return Settlement{
		Operations: len(ops),
		Failed:     int(failed.Load()),
		Err:        err,
	}
}
