package stores

import (
	"context"
	"time"

	"tracking-pixel/internal/models"
)

// CounterStore holds the low-latency aggregates: per-facet counters and the recent-events log.
// Every write carries an absolute expiry; each write resets it (last write wins).
//
// Increment must be an atomic add-and-set-expiry, safe under concurrent callers.
//
//go:generate mockgen -source=counter_store.go -destination=./mocks/counter_store_mock.go -package=mocks
type CounterStore interface {
	// Increment adds n to the counter, creating it when absent.
	Increment(ctx context.Context, key models.CounterKey, n int64, expiresAt time.Time) error
	// PutRecentEvent stores a copy of the event under its (ts, requestId) key.
	// Writing the same key twice keeps a single entry.
	PutRecentEvent(ctx context.Context, event *models.Event, expiresAt time.Time) error
	// GetCount is a strongly consistent read; absent counters read as 0.
	GetCount(ctx context.Context, key models.CounterKey) (int64, error)
	// ListCounters returns every counter of one facet type in store order.
	ListCounters(ctx context.Context, facet models.FacetType) ([]models.FacetCount, error)
	// ListRecentEvents returns at most limit recent events, newest first.
	ListRecentEvents(ctx context.Context, limit int) ([]*models.Event, error)
}
