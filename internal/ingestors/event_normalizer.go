package ingestors

import (
	"context"
	"encoding/base64"
	"net/http"
	"time"

	"tracking-pixel/internal/models"
	"tracking-pixel/internal/shared/loggers"
)

// InboundRequest is the transport-neutral view of one ingest request.
type InboundRequest struct {
	Method          string
	Path            string
	UserAgent       string
	Referer         string
	Query           map[string]string
	Body            []byte
	IsBase64Encoded bool
	SourceIP        string
	RequestID       string
	ReceivedAt      time.Time
}

// IsPixel reports whether the request is a pixel load. Pixel requests never carry a payload.
func (r *InboundRequest) IsPixel() bool {
	return r.Method == http.MethodGet
}

// EventNormalizer builds the canonical event record for one inbound request. It never fails.
//
//go:generate mockgen -source=event_normalizer.go -destination=./mocks/event_normalizer_mock.go -package=mocks
type EventNormalizer interface {
	Normalize(ctx context.Context, req *InboundRequest) *models.Event
}

type eventNormalizer struct {
	classifier UAClassifier
}

func NewEventNormalizer(classifier UAClassifier) EventNormalizer {
	return &eventNormalizer{classifier: classifier}
}

func (n *eventNormalizer) Normalize(ctx context.Context, req *InboundRequest) *models.Event {
	event := &models.Event{
		Ts:        models.FormatTimestamp(req.ReceivedAt),
		RequestID: req.RequestID,
		Method:    req.Method,
		Path:      req.Path,
		IP:        req.SourceIP,
		UserAgent: req.UserAgent,
		Referer:   req.Referer,
		Payload:   n.payload(req),
	}
	if len(req.Query) > 0 {
		event.Query = make(map[string]string, len(req.Query))
		for k, v := range req.Query {
			event.Query[k] = v
		}
	}

	attrs, err := n.classifier.Classify(req.UserAgent)
	if err != nil {
		metricUAClassificationFailedTotal.Inc()
		loggers.Ctx(ctx).Warn().
			Err(err).
			Str(loggers.FieldUserAgent, req.UserAgent).
			Str(loggers.FieldRequestID, req.RequestID).
			Msg("failed to classify user agent")
	}
	event.Browser = attrs.Browser
	event.OS = attrs.OS
	event.Device = attrs.Device

	return event
}

// payload decodes the body of a custom event: base64 when flagged, then JSON, else raw text.
func (n *eventNormalizer) payload(req *InboundRequest) models.Payload {
	if req.IsPixel() || len(req.Body) == 0 {
		return models.MissingPayload()
	}

	body := req.Body
	if req.IsBase64Encoded {
		if decoded, err := base64.StdEncoding.DecodeString(string(body)); err == nil {
			body = decoded
		}
	}
	return models.ParsePayload(body)
}
