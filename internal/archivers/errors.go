package archivers

import (
	"fmt"

	"tracking-pixel/internal/shared/svcerrors"
)

// BatchArchiver errors
const (
	codeInternalArchiveEncodeFailed = "ARCH_9000"
	codeInternalArchiveWriteFailed  = "ARCH_9001"
)

// errInternalArchiveEncodeFailed returns an error when the batch could not be serialized or compressed.
func errInternalArchiveEncodeFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalArchiveEncodeFailed, fmt.Errorf("archiveEncodeFailed: %w", cause))
}

// errInternalArchiveWriteFailed returns an error when the archive blob could not be stored.
func errInternalArchiveWriteFailed(key string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalArchiveWriteFailed, fmt.Errorf("archiveWriteFailed (key=%s): %w", key, cause))
}
