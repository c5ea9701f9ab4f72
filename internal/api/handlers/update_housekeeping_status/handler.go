package update_housekeeping_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/service/staff"
)

const (
	msgInvalidTaskID      = "некорректный ID задачи"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStatus      = "некорректный статус задачи"
	msgNotFound           = "задача не найдена"
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

// Handle PATCH /api/v1/housekeeping/{taskId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем taskId из URL
	vars := mux.Vars(r)
	taskIDStr := vars["taskId"]

	taskID, err := strconv.ParseInt(taskIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /housekeeping/{id}/status - Invalid task ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTaskID)
		return
	}

	var req UpdateTaskStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /housekeeping/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	task, err := h.service.UpdateTaskStatus(r.Context(), taskID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, staff.ErrTaskNotFound):
			h.logger.Warn("PATCH /housekeeping/{id}/status - Task not found: task_id=%d", taskID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, staff.ErrInvalidInput):
			h.logger.Warn("PATCH /housekeeping/{id}/status - Invalid status: task_id=%d, status=%s",
				taskID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PATCH /housekeeping/{id}/status - Failed to update status: task_id=%d, error=%v",
				taskID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /housekeeping/{id}/status - Task status updated successfully: task_id=%d, status=%s",
		taskID, req.Status)
	handlers.RespondJSON(w, http.StatusOK, task)
}
