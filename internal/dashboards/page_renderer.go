package dashboards

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"strings"
	"time"
)

const (
	PageDemo      = "demo"
	PageDashboard = "dashboard"

	// StatsPath is the route polled by both pages.
	StatsPath = "/api/stats"

	defaultPollInterval = 5 * time.Second
)

//go:embed templates/*.html
var templateFS embed.FS

type PageOptions struct {
	// IngestPath is the route that receives pixel loads and custom events.
	IngestPath string
	// APIEndpoint prefixes the ingest and stats URLs. Empty means same origin.
	APIEndpoint  string
	PollInterval time.Duration
}

//go:generate mockgen -source=page_renderer.go -destination=./mocks/page_renderer_mock.go -package=mocks
type PageRenderer interface {
	Render(w io.Writer, page string) error
}

type pageRenderer struct {
	pages map[string]*template.Template
	data  pageData
}

type pageData struct {
	Title               string
	IngestPath          string
	IngestURL           string
	PixelURL            string
	StatsURL            string
	PollIntervalMs      int64
	PollIntervalSeconds int64
}

// NewPageRenderer parses the embedded demo and dashboard templates.
func NewPageRenderer(opts PageOptions) (PageRenderer, error) {
	if opts.PollInterval <= 0 {
		opts.PollInterval = defaultPollInterval
	}

	pages := make(map[string]*template.Template, 2)
	for _, page := range []string{PageDemo, PageDashboard} {
		tmpl, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, errInternalPageRenderFailed(page, err)
		}
		pages[page] = tmpl
	}

	endpoint := strings.TrimSuffix(opts.APIEndpoint, "/")
	ingestURL := endpoint + opts.IngestPath
	return &pageRenderer{
		pages: pages,
		data: pageData{
			IngestPath:          opts.IngestPath,
			IngestURL:           ingestURL,
			PixelURL:            ingestURL + "?page=demo",
			StatsURL:            endpoint + StatsPath,
			PollIntervalMs:      opts.PollInterval.Milliseconds(),
			PollIntervalSeconds: int64(opts.PollInterval / time.Second),
		},
	}, nil
}

// Render writes the full page to w, or nothing when rendering fails.
func (r *pageRenderer) Render(w io.Writer, page string) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return errNotFoundPage(page)
	}

	data := r.data
	data.Title = pageTitle(page)

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, page+".html", data); err != nil {
		return errInternalPageRenderFailed(page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

func pageTitle(page string) string {
	if page == PageDashboard {
		return "Dashboard"
	}
	return "Tracking Pixel Demo"
}
