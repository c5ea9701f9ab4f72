package get_room_service_requests

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelService/internal/service/roomservice"
)

const (
	msgInvalidGuestID = "некорректный ID гостя"
	msgMissingUserID  = "отсутствует ID пользователя"
	msgForbidden      = "доступ запрещен"
	msgInvalidStatus  = "некорректный статус запроса"
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

// Handle GET /api/v1/room-service
// Query params: guestId (optional, только свои запросы), status (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// С guestId возвращаем историю запросов конкретного гостя
	if guestIDStr := query.Get("guestId"); guestIDStr != "" {
		guestID, err := strconv.ParseInt(guestIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /room-service - Invalid guest ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidGuestID)
			return
		}

		userID, ok := middleware.GetUserID(r.Context())
		if !ok {
			h.logger.Warn("GET /room-service - Missing user ID")
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}
		if userID != guestID {
			h.logger.Warn("GET /room-service - Access denied: guest_id=%d, user_id=%d", guestID, userID)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}

		result, err := h.service.GetGuestRequests(r.Context(), guestID)
		if err != nil {
			h.logger.Error("GET /room-service - Failed to get guest requests: guest_id=%d, error=%v",
				guestID, err)
			handlers.RespondInternalError(w)
			return
		}

		h.logger.Info("GET /room-service - Guest requests retrieved: guest_id=%d, count=%d",
			guestID, len(result.Requests))
		handlers.RespondJSON(w, http.StatusOK, result)
		return
	}

	var status *string
	if s := query.Get("status"); s != "" {
		status = &s
	}

	result, err := h.service.List(r.Context(), status)
	if err != nil {
		switch {
		case errors.Is(err, roomservice.ErrInvalidInput):
			h.logger.Warn("GET /room-service - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /room-service - Failed to list requests: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /room-service - Requests retrieved successfully: count=%d", len(result.Requests))
	handlers.RespondJSON(w, http.StatusOK, result)
}
