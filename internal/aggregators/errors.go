package aggregators

import (
	"fmt"

	"tracking-pixel/internal/shared/svcerrors"
)

const (
	codeInternalCounterWriteFailed     = "AGG_9000"
	codeInternalRecentEventWriteFailed = "AGG_9001"
)

// errInternalCounterWriteFailed returns an error when a counter increment fails.
func errInternalCounterWriteFailed(operation string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalCounterWriteFailed, fmt.Errorf("counterWriteFailed(%s): %w", operation, cause))
}

// errInternalRecentEventWriteFailed returns an error when a recent-event insert fails.
func errInternalRecentEventWriteFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRecentEventWriteFailed, fmt.Errorf("recentEventWriteFailed: %w", cause))
}
