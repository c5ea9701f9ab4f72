package get_housekeeping_tasks

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/service/staff"
	"github.com/m04kA/SMC-HotelService/internal/service/staff/models"
	"github.com/m04kA/SMC-HotelService/pkg/types"
)

const (
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidFilter = "некорректный фильтр по статусу"
)

type Handler struct {
	service  StaffService
	location *time.Location
	logger   Logger
}

func NewHandler(service StaffService, location *time.Location, logger Logger) *Handler {
	return &Handler{
		service:  service,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/housekeeping
// Query params: status (optional), date (optional, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	serviceReq := &models.ListTasksRequest{}
	if status := query.Get("status"); status != "" {
		serviceReq.Status = &status
	}

	if dateStr := query.Get("date"); dateStr != "" {
		date, err := types.NewDateStringFromString(dateStr)
		if err != nil {
			h.logger.Warn("GET /housekeeping - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		t, err := date.Time(h.location)
		if err != nil {
			h.logger.Warn("GET /housekeeping - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		serviceReq.Date = &t
	}

	result, err := h.service.ListTasks(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, staff.ErrInvalidInput):
			h.logger.Warn("GET /housekeeping - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /housekeeping - Failed to list tasks: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /housekeeping - Tasks retrieved successfully: count=%d", len(result.Tasks))
	handlers.RespondJSON(w, http.StatusOK, result)
}
