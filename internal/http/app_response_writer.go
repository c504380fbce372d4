package http

import (
	"net/http"

	"tracking-pixel/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5/middleware"
)

// appResponseWriter wraps the http.ResponseWriter so middleware can see the status, byte count and
// the service error of a request. A pixel served after a failed ingest keeps status 200 but still
// carries the error code.
type appResponseWriter struct {
	middleware.WrapResponseWriter
	svcError *svcerrors.ServiceError
}

func newAppResponseWriter(w http.ResponseWriter, protoMajor int) *appResponseWriter {
	return &appResponseWriter{
		WrapResponseWriter: middleware.NewWrapResponseWriter(w, protoMajor),
	}
}

func (w *appResponseWriter) SetServiceError(svcError *svcerrors.ServiceError) {
	w.svcError = svcError
}

func (w *appResponseWriter) ErrorCode() string {
	if w.svcError != nil {
		return w.svcError.Code
	}
	return ""
}

// recordServiceError attaches err to the request's metrics without writing an error response.
func recordServiceError(w http.ResponseWriter, err error) {
	appWriter, ok := w.(*appResponseWriter)
	if !ok || err == nil {
		return
	}
	svcErr, ok := svcerrors.AsServiceError(err)
	if !ok {
		svcErr = svcerrors.NewInternalErrorUndefined(err)
	}
	appWriter.SetServiceError(svcErr)
}
