package ingestors_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"tracking-pixel/internal/aggregators"
	aggregatormocks "tracking-pixel/internal/aggregators/mocks"
	"tracking-pixel/internal/ingestors"
	"tracking-pixel/internal/ingestors/mocks"
	"tracking-pixel/internal/models"
	"tracking-pixel/internal/shared/svcerrors"
	streammocks "tracking-pixel/internal/streams/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func normalizedEvent() *models.Event {
	return &models.Event{
		Ts:        "2024-05-01T12:30:45.123Z",
		RequestID: "req-1",
		Method:    http.MethodGet,
		Path:      "/e",
		Browser:   "Chrome",
		OS:        "Windows",
		Device:    "Desktop",
		Payload:   models.MissingPayload(),
	}
}

func TestIngestionService_Ingest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		inline      bool
		method      string
		setup       func(normalizer *mocks.MockEventNormalizer, publisher *streammocks.MockEventPublisher, updater *aggregatormocks.MockAggregateUpdater, event *models.Event)
		wantErrCode string
	}{
		{
			name:   "sync mode publishes and updates aggregates",
			inline: true,
			method: http.MethodGet,
			setup: func(normalizer *mocks.MockEventNormalizer, publisher *streammocks.MockEventPublisher, updater *aggregatormocks.MockAggregateUpdater, event *models.Event) {
				normalizer.EXPECT().Normalize(gomock.Any(), gomock.Any()).Return(event)
				publisher.EXPECT().Publish(gomock.Any(), event).Return(nil)
				updater.EXPECT().UpdateEvent(gomock.Any(), event).Return(aggregators.Settlement{Operations: 5})
			},
		},
		{
			name:   "sync mode tolerates aggregate failures",
			inline: true,
			method: http.MethodPost,
			setup: func(normalizer *mocks.MockEventNormalizer, publisher *streammocks.MockEventPublisher, updater *aggregatormocks.MockAggregateUpdater, event *models.Event) {
				normalizer.EXPECT().Normalize(gomock.Any(), gomock.Any()).Return(event)
				publisher.EXPECT().Publish(gomock.Any(), event).Return(nil)
				updater.EXPECT().UpdateEvent(gomock.Any(), event).Return(aggregators.Settlement{Operations: 5, Failed: 2, Err: errors.New("throttled")})
			},
		},
		{
			name:   "batch mode only publishes",
			inline: false,
			method: http.MethodGet,
			setup: func(normalizer *mocks.MockEventNormalizer, publisher *streammocks.MockEventPublisher, _ *aggregatormocks.MockAggregateUpdater, event *models.Event) {
				normalizer.EXPECT().Normalize(gomock.Any(), gomock.Any()).Return(event)
				publisher.EXPECT().Publish(gomock.Any(), event).Return(nil)
			},
		},
		{
			name:   "publish failure still updates aggregates",
			inline: true,
			method: http.MethodPost,
			setup: func(normalizer *mocks.MockEventNormalizer, publisher *streammocks.MockEventPublisher, updater *aggregatormocks.MockAggregateUpdater, event *models.Event) {
				normalizer.EXPECT().Normalize(gomock.Any(), gomock.Any()).Return(event)
				publisher.EXPECT().Publish(gomock.Any(), event).Return(errors.New("stream unavailable"))
				updater.EXPECT().UpdateEvent(gomock.Any(), event).Return(aggregators.Settlement{Operations: 5})
			},
			wantErrCode: "INGEST_9000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			normalizer := mocks.NewMockEventNormalizer(ctrl)
			publisher := streammocks.NewMockEventPublisher(ctrl)
			updater := aggregatormocks.NewMockAggregateUpdater(ctrl)

			event := normalizedEvent()
			tt.setup(normalizer, publisher, updater, event)

			var service ingestors.IngestionService
			if tt.inline {
				service = ingestors.NewIngestionService(normalizer, publisher, updater)
			} else {
				service = ingestors.NewIngestionService(normalizer, publisher, nil)
			}

			got, err := service.Ingest(context.Background(), &ingestors.InboundRequest{Method: tt.method, RequestID: "req-1"})

			assert.Same(t, event, got)
			if tt.wantErrCode == "" {
				require.NoError(t, err)
				return
			}
			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantErrCode, svcErr.Code)
			assert.True(t, svcErr.IsInternalError())
		})
	}
}
