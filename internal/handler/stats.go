package handler

import (
	"log/slog"
	"net/http"

	"github.com/ruilin/inspiration-space/internal/service"
)

// StatsHandler serves the statistics screen's data.
type StatsHandler struct {
	svc    *service.InspirationService
	logger *slog.Logger
}

// NewStatsHandler creates the handler.
func NewStatsHandler(svc *service.InspirationService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{svc: svc, logger: logger}
}

// HandleStats returns the summary for a period.
//
// GET /api/stats?period=week|month|total (defaults to week)
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	summary := h.svc.Statistics(r.Context(), r.URL.Query().Get("period"))
	writeJSON(w, http.StatusOK, summary)
}
