package update_employee

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/service/staff"
	"github.com/m04kA/SMC-HotelService/internal/service/staff/models"
)

const (
	msgInvalidEmployeeID  = "некорректный ID сотрудника"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "сотрудник не найден"
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

// Handle PUT /api/v1/employees/{employeeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем employeeId из URL
	vars := mux.Vars(r)
	employeeIDStr := vars["employeeId"]

	employeeID, err := strconv.ParseInt(employeeIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /employees/{id} - Invalid employee ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEmployeeID)
		return
	}

	var req models.UpdateEmployeeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /employees/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	employee, err := h.service.UpdateEmployee(r.Context(), employeeID, &req)
	if err != nil {
		switch {
		case errors.Is(err, staff.ErrEmployeeNotFound):
			h.logger.Warn("PUT /employees/{id} - Employee not found: employee_id=%d", employeeID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, staff.ErrInvalidInput):
			h.logger.Warn("PUT /employees/{id} - Invalid input: employee_id=%d, error=%v", employeeID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /employees/{id} - Failed to update employee: employee_id=%d, error=%v",
				employeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /employees/{id} - Employee updated successfully: employee_id=%d", employeeID)
	handlers.RespondJSON(w, http.StatusOK, employee)
}
