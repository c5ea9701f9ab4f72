package add_employee

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/service/staff"
	"github.com/m04kA/SMC-HotelService/internal/service/staff/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
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

// Handle POST /api/v1/employees
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.AddEmployeeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /employees - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	employee, err := h.service.AddEmployee(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, staff.ErrInvalidInput):
			h.logger.Warn("POST /employees - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /employees - Failed to add employee: name=%s, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /employees - Employee added successfully: employee_id=%d, name=%s",
		employee.ID, employee.Name)
	handlers.RespondJSON(w, http.StatusCreated, employee)
}
