package http

import (
	"fmt"

	"tracking-pixel/internal/shared/svcerrors"
)

// HTTP errors
const (
	codeNotFoundRoute      = "HTTP_4040"
	codePayloadTooLarge    = "HTTP_4130"
	codeInvalidRequestBody = "HTTP_4000"
)

// errNotFoundRoute returns an error when no route matches the method and path.
func errNotFoundRoute(method, path string) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeNotFoundRoute, fmt.Sprintf("no route for %s %s", method, path))
}

// errPayloadTooLarge returns an error when the request body exceeds the configured limit.
func errPayloadTooLarge(limit int64, cause error) *svcerrors.ServiceError {
	return svcerrors.NewPayloadTooLargeError(codePayloadTooLarge, fmt.Sprintf("request body exceeds %d bytes", limit), cause)
}

// errInvalidRequestBody returns an error when the request body could not be read.
func errInvalidRequestBody(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidRequestBody, "request body could not be read", cause)
}
