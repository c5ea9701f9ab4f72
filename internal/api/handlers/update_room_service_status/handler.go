package update_room_service_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/service/roomservice"
)

const (
	msgInvalidRequestID   = "некорректный ID запроса"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStatus      = "некорректный статус запроса"
	msgNotFound           = "запрос не найден"
)

type Handler struct {
	service RoomServiceService
	logger  Logger
}

func NewHandler(service RoomServiceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/room-service/{requestId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем requestId из URL
	vars := mux.Vars(r)
	requestIDStr := vars["requestId"]

	requestID, err := strconv.ParseInt(requestIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /room-service/{id}/status - Invalid request ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return
	}

	var req UpdateRequestStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /room-service/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	request, err := h.service.UpdateStatus(r.Context(), requestID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, roomservice.ErrRequestNotFound):
			h.logger.Warn("PATCH /room-service/{id}/status - Request not found: request_id=%d", requestID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, roomservice.ErrInvalidInput):
			h.logger.Warn("PATCH /room-service/{id}/status - Invalid status: request_id=%d, status=%s",
				requestID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PATCH /room-service/{id}/status - Failed to update status: request_id=%d, error=%v",
				requestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /room-service/{id}/status - Status updated successfully: request_id=%d, status=%s",
		requestID, req.Status)
	handlers.RespondJSON(w, http.StatusOK, request)
}
