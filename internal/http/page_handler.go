package http

import (
	"bytes"
	"net/http"

	"tracking-pixel/internal/dashboards"
)

type pageHandler struct {
	renderer dashboards.PageRenderer
	page     string
}

func NewPageHandler(renderer dashboards.PageRenderer, page string) AppHttpHandler {
	return &pageHandler{renderer: renderer, page: page}
}

// Handle serves the demo or dashboard HTML page.
func (h *pageHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, h.page); err != nil {
		return err
	}

	w.Header().Set(headerContentType, contentTypeHTML)
	w.WriteHeader(http.StatusOK)
	_, err := buf.WriteTo(w)
	return err
}

type notFoundHandler struct{}

// Handle answers every unroutable method and path.
func (notFoundHandler) Handle(_ http.ResponseWriter, r *http.Request) error {
	return errNotFoundRoute(r.Method, r.URL.Path)
}
