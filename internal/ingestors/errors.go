package ingestors

import (
	"fmt"

	"tracking-pixel/internal/shared/svcerrors"
)

// IngestionService errors
const (
	codeInternalEventPublishFailed = "INGEST_9000"
)

// errInternalEventPublishFailed returns an error when the event could not be appended to the stream.
func errInternalEventPublishFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalEventPublishFailed, fmt.Errorf("eventPublishFailed: %w", cause))
}
