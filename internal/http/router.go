package http

import (
	"net/http"

	"tracking-pixel/internal/dashboards"
	"tracking-pixel/internal/ingestors"
	"tracking-pixel/internal/shared/loggers"
	"tracking-pixel/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

type RouterOptions struct {
	IngestPath   string
	MaxBodyBytes int64
	CORSOrigin   string
}

// NewRouter creates and configures the HTTP router.
func NewRouter(
	ingestionService ingestors.IngestionService,
	statsReader dashboards.StatsReader,
	pageRenderer dashboards.PageRenderer,
	opts RouterOptions,
	httpLogger loggers.Logger,
) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	ingestHandler := errorHandlingAdapter(NewIngestEventHandler(ingestionService, opts.MaxBodyBytes))
	notFound := errorHandlingAdapter(notFoundHandler{})

	// Routes
	router.Group(func(r chi.Router) {
		r.Use(mwCORS(opts.CORSOrigin))
		r.Use(mwMaxBodyBytes(opts.MaxBodyBytes))
		r.Get(opts.IngestPath, ingestHandler)
		r.Post(opts.IngestPath, ingestHandler)
		r.Options(opts.IngestPath, ingestHandler)
	})
	router.Get("/", http.RedirectHandler("/"+dashboards.PageDemo, http.StatusFound).ServeHTTP)
	router.Get("/"+dashboards.PageDemo, errorHandlingAdapter(NewPageHandler(pageRenderer, dashboards.PageDemo)))
	router.Get("/"+dashboards.PageDashboard, errorHandlingAdapter(NewPageHandler(pageRenderer, dashboards.PageDashboard)))
	router.Get(dashboards.StatsPath, errorHandlingAdapter(NewStatsHandler(statsReader)))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	return router
}
