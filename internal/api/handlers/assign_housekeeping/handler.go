package assign_housekeeping

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/service/staff"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgRoomNotFound       = "номер не найден"
	msgEmployeeNotFound   = "сотрудник не найден"
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

// Handle POST /api/v1/housekeeping
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AssignTaskRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /housekeeping - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель сервиса (с парсингом даты)
	serviceReq, err := req.ToServiceRequest(h.location)
	if err != nil {
		h.logger.Warn("POST /housekeeping - Failed to parse task date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	task, err := h.service.AssignTask(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, staff.ErrRoomNotFound):
			h.logger.Warn("POST /housekeeping - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, staff.ErrEmployeeNotFound):
			h.logger.Warn("POST /housekeeping - Employee not found: employee_id=%d", req.EmployeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, staff.ErrInvalidInput):
			h.logger.Warn("POST /housekeeping - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /housekeeping - Failed to assign task: room_id=%d, employee_id=%d, error=%v",
				req.RoomID, req.EmployeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /housekeeping - Task assigned successfully: task_id=%d, room_id=%d, employee_id=%d",
		task.ID, req.RoomID, req.EmployeeID)
	handlers.RespondJSON(w, http.StatusCreated, task)
}
