package cancel_room_service

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelService/internal/service/roomservice"
)

const (
	msgInvalidRequestID = "некорректный ID запроса"
	msgNotFound         = "запрос не найден"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgForbidden        = "доступ запрещен"
	msgCannotCancel     = "запрос не может быть отменен"
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

// Handle PATCH /api/v1/room-service/{requestId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем requestId из URL
	vars := mux.Vars(r)
	requestIDStr := vars["requestId"]

	requestID, err := strconv.ParseInt(requestIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /room-service/{id}/cancel - Invalid request ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return
	}

	// Получаем guestID из контекста (через middleware Auth)
	guestID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /room-service/{id}/cancel - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	err = h.service.Cancel(r.Context(), requestID, guestID)
	if err != nil {
		switch {
		case errors.Is(err, roomservice.ErrRequestNotFound):
			h.logger.Warn("PATCH /room-service/{id}/cancel - Request not found: request_id=%d", requestID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, roomservice.ErrAccessDenied):
			h.logger.Warn("PATCH /room-service/{id}/cancel - Access denied: request_id=%d, guest_id=%d",
				requestID, guestID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, roomservice.ErrNotCancellable):
			h.logger.Warn("PATCH /room-service/{id}/cancel - Cannot cancel: request_id=%d", requestID)
			handlers.RespondBadRequest(w, msgCannotCancel)

		default:
			h.logger.Error("PATCH /room-service/{id}/cancel - Failed to cancel request: request_id=%d, error=%v",
				requestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /room-service/{id}/cancel - Request cancelled successfully: request_id=%d, guest_id=%d",
		requestID, guestID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
