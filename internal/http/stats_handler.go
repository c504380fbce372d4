package http

import (
	"net/http"

	"tracking-pixel/internal/dashboards"
)

type statsHandler struct {
	statsReader dashboards.StatsReader
}

func NewStatsHandler(statsReader dashboards.StatsReader) AppHttpHandler {
	return &statsHandler{statsReader: statsReader}
}

// Handle processes GET /api/stats requests.
func (h *statsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	stats, err := h.statsReader.GetStats(r.Context())
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, stats)
}
