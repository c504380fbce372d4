package stores

import (
	"context"
	"sort"
	"sync"
	"time"

	"tracking-pixel/internal/models"
)

type counterItem struct {
	count     int64
	expiresAt time.Time
}

type recentEventItem struct {
	event     models.Event
	expiresAt time.Time
}

// sweepInterval bounds how often a write triggers a full scan for expired items.
const sweepInterval = time.Minute

// memoryCounterStore keeps counters in process memory for single-node deployments and tests.
// Expired items are treated as absent and deleted when a read meets them. Writes also sweep the
// whole store at most once per sweepInterval, so values that are never read again are evicted too.
type memoryCounterStore struct {
	mu        sync.Mutex
	counters  map[models.FacetType]map[string]*counterItem
	recent    map[string]*recentEventItem
	now       func() time.Time
	lastSweep time.Time
}

func NewMemoryCounterStore() CounterStore {
	return newMemoryCounterStore(time.Now)
}

func newMemoryCounterStore(now func() time.Time) *memoryCounterStore {
	return &memoryCounterStore{
		counters:  make(map[models.FacetType]map[string]*counterItem),
		recent:    make(map[string]*recentEventItem),
		now:       now,
		lastSweep: now(),
	}
}

func (s *memoryCounterStore) Increment(ctx context.Context, key models.CounterKey, n int64, expiresAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.maybeSweep()

	byValue, ok := s.counters[key.Facet]
	if !ok {
		byValue = make(map[string]*counterItem)
		s.counters[key.Facet] = byValue
	}

	item, ok := byValue[key.Value]
	if !ok || s.expired(item.expiresAt) {
		item = &counterItem{}
		byValue[key.Value] = item
	}
	item.count += n
	item.expiresAt = expiresAt
	return nil
}

func (s *memoryCounterStore) PutRecentEvent(ctx context.Context, event *models.Event, expiresAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.maybeSweep()

	s.recent[event.RecentEventKey()] = &recentEventItem{event: *event, expiresAt: expiresAt}
	return nil
}

func (s *memoryCounterStore) GetCount(ctx context.Context, key models.CounterKey) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.counters[key.Facet][key.Value]
	if !ok {
		return 0, nil
	}
	if s.expired(item.expiresAt) {
		delete(s.counters[key.Facet], key.Value)
		return 0, nil
	}
	return item.count, nil
}

// ListCounters returns counters ordered by value, as a sort-key range query would.
func (s *memoryCounterStore) ListCounters(ctx context.Context, facet models.FacetType) ([]models.FacetCount, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]models.FacetCount, 0, len(s.counters[facet]))
	for value, item := range s.counters[facet] {
		if s.expired(item.expiresAt) {
			delete(s.counters[facet], value)
			continue
		}
		result = append(result, models.FacetCount{Value: value, Count: item.count})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Value < result[j].Value })
	return result, nil
}

func (s *memoryCounterStore) ListRecentEvents(ctx context.Context, limit int) ([]*models.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]string, 0, len(s.recent))
	for key, item := range s.recent {
		if s.expired(item.expiresAt) {
			delete(s.recent, key)
			continue
		}
		keys = append(keys, key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	if limit > 0 && len(keys) > limit {
		keys = keys[:limit]
	}

	events := make([]*models.Event, 0, len(keys))
	for _, key := range keys {
		event := s.recent[key].event
		events = append(events, &event)
	}
	return events, nil
}

// maybeSweep deletes every expired item once sweepInterval has passed since the last sweep.
// Callers hold s.mu.
func (s *memoryCounterStore) maybeSweep() {
	now := s.now()
	if now.Sub(s.lastSweep) < sweepInterval {
		return
	}
	s.lastSweep = now

	for facet, byValue := range s.counters {
		for value, item := range byValue {
			if !now.Before(item.expiresAt) {
				delete(byValue, value)
			}
		}
		if len(byValue) == 0 {
			delete(s.counters, facet)
		}
	}
	for key, item := range s.recent {
		if !now.Before(item.expiresAt) {
			delete(s.recent, key)
		}
	}
}

func (s *memoryCounterStore) expired(expiresAt time.Time) bool {
	return !s.now().Before(expiresAt)
}
