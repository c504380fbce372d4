package dashboards

import (
	"context"
	"errors"
	"testing"
	"time"

	"tracking-pixel/internal/models"
	"tracking-pixel/internal/shared/svcerrors"
	"tracking-pixel/internal/stores"
	"tracking-pixel/internal/stores/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var statsNow = time.Date(2024, 5, 1, 23, 59, 0, 0, time.UTC)

func TestTopN(t *testing.T) {
	t.Parallel()

	counts := []models.FacetCount{{Value: "a", Count: 3}, {Value: "b", Count: 10}, {Value: "c", Count: 7}}

	assert.Equal(t, []models.FacetCount{{Value: "b", Count: 10}, {Value: "c", Count: 7}, {Value: "a", Count: 3}}, TopN(counts, 5))
	assert.Equal(t, []models.FacetCount{{Value: "b", Count: 10}}, TopN(counts, 1))
	assert.Equal(t, "a", counts[0].Value, "input must not be reordered")
}

func TestTopN_TiesKeepInputOrder(t *testing.T) {
	t.Parallel()

	counts := []models.FacetCount{{Value: "x", Count: 2}, {Value: "y", Count: 5}, {Value: "z", Count: 2}}

	assert.Equal(t, []models.FacetCount{{Value: "y", Count: 5}, {Value: "x", Count: 2}, {Value: "z", Count: 2}}, TopN(counts, 3))
	assert.Empty(t, TopN(nil, 5))
}

func TestStatsReader_EmptyStore(t *testing.T) {
	t.Parallel()

	reader := newStatsReader(stores.NewMemoryCounterStore(), func() time.Time { return statsNow })

	stats, err := reader.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &models.Stats{
		DailyCount:   0,
		TopPages:     []models.FacetCount{},
		RecentEvents: []*models.Event{},
		Browsers:     []models.FacetCount{},
		Devices:      []models.FacetCount{},
	}, stats)
}

func TestStatsReader_GetStats(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	store := mocks.NewMockCounterStore(ctrl)
	reader := newStatsReader(store, func() time.Time { return statsNow })

	pages := []models.FacetCount{
		{Value: "/a", Count: 1}, {Value: "/b", Count: 9}, {Value: "/c", Count: 4},
		{Value: "/d", Count: 6}, {Value: "/e", Count: 2}, {Value: "/f", Count: 8},
	}
	browsers := []models.FacetCount{{Value: "Chrome", Count: 30}, {Value: "Firefox", Count: 5}}
	devices := []models.FacetCount{{Value: "Desktop", Count: 2}, {Value: "Mobile", Count: 7}, {Value: "Tablet", Count: 1}}
	recent := []*models.Event{{Ts: "2024-05-01T23:58:00.000Z", RequestID: "req-2"}, {Ts: "2024-05-01T23:57:00.000Z", RequestID: "req-1"}}

	store.EXPECT().GetCount(gomock.Any(), models.CounterKey{Facet: models.FacetDaily, Value: "2024-05-01"}).Return(int64(42), nil)
	store.EXPECT().ListCounters(gomock.Any(), models.FacetPage).Return(pages, nil)
	store.EXPECT().ListCounters(gomock.Any(), models.FacetBrowser).Return(browsers, nil)
	store.EXPECT().ListCounters(gomock.Any(), models.FacetDevice).Return(devices, nil)
	store.EXPECT().ListRecentEvents(gomock.Any(), RecentEventsLimit).Return(recent, nil)

	stats, err := reader.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(42), stats.DailyCount)
	assert.Equal(t, []models.FacetCount{
		{Value: "/b", Count: 9}, {Value: "/f", Count: 8}, {Value: "/d", Count: 6}, {Value: "/c", Count: 4}, {Value: "/e", Count: 2},
	}, stats.TopPages)
	assert.Equal(t, browsers, stats.Browsers)
	assert.Equal(t, []models.FacetCount{{Value: "Mobile", Count: 7}, {Value: "Desktop", Count: 2}, {Value: "Tablet", Count: 1}}, stats.Devices)
	assert.Equal(t, recent, stats.RecentEvents)
}

func TestStatsReader_AnyReadFailureFailsStats(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	store := mocks.NewMockCounterStore(ctrl)
	reader := newStatsReader(store, func() time.Time { return statsNow })

	cause := errors.New("provisioned throughput exceeded")
	store.EXPECT().GetCount(gomock.Any(), gomock.Any()).Return(int64(1), nil)
	store.EXPECT().ListCounters(gomock.Any(), models.FacetPage).Return(nil, cause)
	store.EXPECT().ListCounters(gomock.Any(), models.FacetBrowser).Return(nil, nil)
	store.EXPECT().ListCounters(gomock.Any(), models.FacetDevice).Return(nil, nil)
	store.EXPECT().ListRecentEvents(gomock.Any(), gomock.Any()).Return(nil, nil)

	stats, err := reader.GetStats(context.Background())
	assert.Nil(t, stats)
	require.ErrorIs(t, err, cause)

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "STATS_9000", svcErr.Code)
	assert.Equal(t, 500, svcErr.HttpStatusCode)
}
