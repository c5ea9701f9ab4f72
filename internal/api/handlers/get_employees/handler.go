package get_employees

import (
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
)

type Handler struct {
	service StaffService
	logger  Logger
}

func NewHandler(service StaffService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/employees
// Query params: department (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var department *string
	if d := r.URL.Query().Get("department"); d != "" {
		department = &d
	}

	result, err := h.service.ListEmployees(r.Context(), department)
	if err != nil {
		h.logger.Error("GET /employees - Failed to list employees: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /employees - Employees retrieved successfully: count=%d", len(result.Employees))
	handlers.RespondJSON(w, http.StatusOK, result)
}
