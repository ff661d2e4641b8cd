package handler

import (
	"log/slog"
	"net/http"

	"studydeck/internal/httputil"
	"studydeck/internal/service"
)

// StatisticsHandler handles study statistics HTTP requests
type StatisticsHandler struct {
	statsService *service.StatisticsService
	logger       *slog.Logger
}

// NewStatisticsHandler creates a new statistics handler
func NewStatisticsHandler(statsService *service.StatisticsService, logger *slog.Logger) *StatisticsHandler {
	return &StatisticsHandler{
		statsService: statsService,
		logger:       logger,
	}
}

// ListStatistics returns the raw per-day rows ordered by date
// GET /api/statistics
func (h *StatisticsHandler) ListStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.ListStatistics(r.Context(), httputil.GetUserID(r))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, stats)
}

// GetSummary returns the derived dashboard
// GET /api/statistics/summary?month=YYYY-MM
func (h *StatisticsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	summary, err := h.statsService.GetSummary(r.Context(), httputil.GetUserID(r), month)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, summary)
}
