package http

import (
	"context"
	"net/http"
	"strings"
)

const (
	headerRequestID               = "x-request-id"
	headerContentType             = "content-type"
	headerContentTransferEncoding = "content-transfer-encoding"
	headerCacheControl            = "cache-control"
	headerUserAgent               = "user-agent"
	headerReferer                 = "referer"
	headerForwardedFor            = "x-forwarded-for"
	headerViewerAddress           = "cloudfront-viewer-address"

	headerAllowOrigin  = "access-control-allow-origin"
	headerAllowMethods = "access-control-allow-methods"
	headerAllowHeaders = "access-control-allow-headers"
	headerMaxAge       = "access-control-max-age"

	contentTypeJSON = "application/json"
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeGIF  = "image/gif"

	cacheControlNoStore = "no-store, no-cache, must-revalidate, private"
)

type requestIDKey struct{}

func withRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// requestID returns the server-assigned id of the request, empty outside mwRequestID.
func requestID(r *http.Request) string {
	id, _ := r.Context().Value(requestIDKey{}).(string)
	return id
}

// correlationID is the caller supplied X-Request-Id. It is only logged, never used as the event id.
func correlationID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerRequestID))
}

func userAgent(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerUserAgent))
}

func referer(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerReferer))
}

// isBase64Body reports whether the sender marked the body as base64 encoded.
func isBase64Body(r *http.Request) bool {
	return strings.EqualFold(strings.TrimSpace(r.Header.Get(headerContentTransferEncoding)), "base64")
}
