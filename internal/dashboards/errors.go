package dashboards

import (
	"fmt"

	"tracking-pixel/internal/shared/svcerrors"
)

// StatsReader errors
const (
	codeInternalStatsReadFailed = "STATS_9000"
)

// PageRenderer errors
const (
	codeInternalPageRenderFailed = "STATS_9001"
)

// errInternalStatsReadFailed returns an error when any of the dashboard reads failed.
func errInternalStatsReadFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalStatsReadFailed, fmt.Errorf("statsReadFailed: %w", cause))
}

// errInternalPageRenderFailed returns an error when an HTML page could not be rendered.
func errInternalPageRenderFailed(page string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalPageRenderFailed, fmt.Errorf("pageRenderFailed (page=%s): %w", page, cause))
}

const (
	codeNotFoundPage = "STATS_4040"
)

// errNotFoundPage returns an error when no template exists for the requested page.
func errNotFoundPage(page string) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeNotFoundPage, fmt.Sprintf("page %q not found", page))
}
