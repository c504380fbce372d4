package http

import (
	"errors"
	"io"
	"net/http"
	"time"

	"tracking-pixel/internal/ingestors"
	"tracking-pixel/internal/shared/loggers"
	"tracking-pixel/internal/shared/ulid"
)

// pixelGIF is a 1x1 transparent GIF.
var pixelGIF = []byte{
	0x47, 0x49, 0x46, 0x38, 0x39, 0x61, 0x01, 0x00, 0x01, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00,
	0xff, 0xff, 0xff, 0x21, 0xf9, 0x04, 0x01, 0x00, 0x00, 0x00, 0x00, 0x2c, 0x00, 0x00, 0x00, 0x00,
	0x01, 0x00, 0x01, 0x00, 0x00, 0x02, 0x01, 0x44, 0x00, 0x3b,
}

type ingestEventHandler struct {
	ingestionService ingestors.IngestionService
	maxBodyBytes     int64
	now              func() time.Time
}

func NewIngestEventHandler(ingestionService ingestors.IngestionService, maxBodyBytes int64) AppHttpHandler {
	return &ingestEventHandler{
		ingestionService: ingestionService,
		maxBodyBytes:     maxBodyBytes,
		now:              time.Now,
	}
}

// Handle processes GET (pixel), POST (custom event) and OPTIONS (preflight) on the ingest path.
func (h *ingestEventHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return nil
	}

	req, err := h.inboundRequest(r)
	if err != nil {
		return err
	}

	_, err = h.ingestionService.Ingest(r.Context(), req)
	if req.IsPixel() {
		// The image must render even when the event was not persisted
		if err != nil {
			loggers.Ctx(r.Context()).Warn().Err(err).Msg("serving pixel despite ingest failure")
			recordServiceError(w, err)
		}
		writePixel(w)
		return nil
	}
	if err != nil {
		return err
	}

	w.WriteHeader(http.StatusAccepted)
	return nil
}

func (h *ingestEventHandler) inboundRequest(r *http.Request) (*ingestors.InboundRequest, error) {
	id := requestID(r)
	if id == "" {
		id = ulid.NewULID()
	}
	req := &ingestors.InboundRequest{
		Method:          r.Method,
		Path:            r.URL.Path,
		UserAgent:       userAgent(r),
		Referer:         referer(r),
		IsBase64Encoded: isBase64Body(r),
		SourceIP:        clientIP(r),
		RequestID:       id,
		ReceivedAt:      h.now(),
	}

	if values := r.URL.Query(); len(values) > 0 {
		req.Query = make(map[string]string, len(values))
		for key := range values {
			req.Query[key] = values.Get(key)
		}
	}

	if req.IsPixel() || r.Body == nil {
		return req, nil
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, errPayloadTooLarge(h.maxBodyBytes, err)
		}
		return nil, errInvalidRequestBody(err)
	}
	req.Body = body
	return req, nil
}

func writePixel(w http.ResponseWriter) {
	h := w.Header()
	h.Set(headerContentType, contentTypeGIF)
	h.Set(headerCacheControl, cacheControlNoStore)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pixelGIF)
}
