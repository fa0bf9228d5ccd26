package get_analytics_summary

import (
	"net/http"

	"github.com/ndemina/Salon-AdminService/internal/api/handlers"
)

type Handler struct {
	service AnalyticsService
	logger  Logger
}

func NewHandler(service AnalyticsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/analytics/summary
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetSummary(r.Context())
	if err != nil {
		h.logger.Error("GET /analytics/summary - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /analytics/summary - Success: %d months, total revenue %.2f",
		len(result.Monthly), result.TotalRevenue)
	handlers.RespondJSON(w, http.StatusOK, result)
}
