package delete_employee

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/service/staff"
)

const (
	msgInvalidEmployeeID = "некорректный ID сотрудника"
	msgNotFound          = "сотрудник не найден"
	msgEmployeeAssigned  = "за сотрудником числятся задачи по уборке"
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

// Handle DELETE /api/v1/employees/{employeeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем employeeId из URL
	vars := mux.Vars(r)
	employeeIDStr := vars["employeeId"]

	employeeID, err := strconv.ParseInt(employeeIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /employees/{id} - Invalid employee ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEmployeeID)
		return
	}

	err = h.service.DeleteEmployee(r.Context(), employeeID)
	if err != nil {
		switch {
		case errors.Is(err, staff.ErrEmployeeNotFound):
			h.logger.Warn("DELETE /employees/{id} - Employee not found: employee_id=%d", employeeID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, staff.ErrEmployeeAssigned):
			h.logger.Warn("DELETE /employees/{id} - Employee has assigned tasks: employee_id=%d", employeeID)
			handlers.RespondError(w, http.StatusConflict, msgEmployeeAssigned)

		default:
			h.logger.Error("DELETE /employees/{id} - Failed to delete employee: employee_id=%d, error=%v",
				employeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /employees/{id} - Employee deleted successfully: employee_id=%d", employeeID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
