package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"tracking-pixel/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
)

func TestAppResponseWriter_SetServiceError_And_ErrorCode(t *testing.T) {
	t.Parallel()

	appWriter := newAppResponseWriter(httptest.NewRecorder(), 1)
	assert.Equal(t, "", appWriter.ErrorCode())

	appWriter.SetServiceError(svcerrors.NewPayloadTooLargeError("HTTP_4130", "too large", nil))
	assert.Equal(t, "HTTP_4130", appWriter.ErrorCode())

	appWriter.SetServiceError(nil)
	assert.Equal(t, "", appWriter.ErrorCode())
}

func TestAppResponseWriter_TracksPixelResponse(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	appWriter := newAppResponseWriter(rr, 1)

	writePixel(appWriter)

	assert.Equal(t, http.StatusOK, appWriter.Status())
	assert.Equal(t, len(pixelGIF), appWriter.BytesWritten())
	assert.Equal(t, contentTypeGIF, rr.Header().Get(headerContentType))
	assert.Equal(t, pixelGIF, rr.Body.Bytes())
}

func TestRecordServiceError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{
			name:     "wrapped service error keeps its code",
			err:      fmt.Errorf("ingest: %w", svcerrors.NewInternalError("INGEST_9000", errors.New("stream down"))),
			wantCode: "INGEST_9000",
		},
		{
			name:     "plain error becomes undefined internal",
			err:      errors.New("boom"),
			wantCode: "SYS_9001",
		},
		{
			name:     "nil error records nothing",
			err:      nil,
			wantCode: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rr := httptest.NewRecorder()
			appWriter := newAppResponseWriter(rr, 1)

			recordServiceError(appWriter, tt.err)
			writePixel(appWriter)

			assert.Equal(t, tt.wantCode, appWriter.ErrorCode())
			assert.Equal(t, http.StatusOK, rr.Code)
		})
	}
}

func TestRecordServiceError_IgnoresPlainWriter(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() { recordServiceError(rr, errors.New("boom")) })
	assert.Equal(t, http.StatusOK, rr.Code)
}
