package consumers

import (
	"fmt"

	"tracking-pixel/internal/shared/svcerrors"
)

// EventBatchHandler errors
const (
	codeInternalBatchArchiveFailed = "CONSUME_9000"
)

// errInternalBatchArchiveFailed returns an error when the batch could not be archived and must be redelivered.
func errInternalBatchArchiveFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalBatchArchiveFailed, fmt.Errorf("batchArchiveFailed: %w", cause))
}
