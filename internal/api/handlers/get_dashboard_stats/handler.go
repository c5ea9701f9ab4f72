package get_dashboard_stats

import (
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
)

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/dashboard/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.DashboardStats(r.Context())
	if err != nil {
		h.logger.Error("GET /dashboard/stats - Failed to collect stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /dashboard/stats - Stats collected successfully: total_rooms=%d, occupancy_rate=%.2f",
		stats.TotalRooms, stats.OccupancyRate)
	handlers.RespondJSON(w, http.StatusOK, stats)
}
