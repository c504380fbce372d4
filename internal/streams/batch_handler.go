package streams

import (
	"context"

	"tracking-pixel/internal/shared/metrics"
	"tracking-pixel/internal/shared/svcerrors"
)

// BatchHandler processes one delivered batch. A returned error asks the transport to redeliver
// the whole batch.
//
//go:generate mockgen -source=batch_handler.go -destination=./mocks/batch_handler_mock.go -package=mocks
type BatchHandler interface {
	HandleBatch(ctx context.Context, records []Record) error
}

func errorCodeLabel(err error) string {
	if err == nil {
		return metrics.ValueNoError
	}
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		return svcErr.Code
	}
	return svcerrors.NewInternalErrorUndefined(err).Code
}
