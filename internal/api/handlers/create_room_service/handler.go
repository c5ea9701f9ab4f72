package create_room_service

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelService/internal/service/roomservice"
	"github.com/m04kA/SMC-HotelService/internal/service/roomservice/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidBooking     = "бронирование не найдено"
	msgBookingNotActive   = "бронирование не активно"
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

// Handle POST /api/v1/room-service
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Гость берется из контекста (middleware Auth)
	guestID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /room-service - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.CreateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /room-service - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.GuestID = guestID

	request, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		// Чужое бронирование не раскрываем, отвечаем как на отсутствующее
		case errors.Is(err, roomservice.ErrInvalidBooking):
			h.logger.Warn("POST /room-service - Booking not found or not owned: booking_id=%d, guest_id=%d",
				req.BookingID, guestID)
			handlers.RespondNotFound(w, msgInvalidBooking)

		case errors.Is(err, roomservice.ErrBookingNotActive):
			h.logger.Warn("POST /room-service - Booking not active: booking_id=%d", req.BookingID)
			handlers.RespondError(w, http.StatusConflict, msgBookingNotActive)

		case errors.Is(err, roomservice.ErrInvalidInput):
			h.logger.Warn("POST /room-service - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /room-service - Failed to create request: booking_id=%d, error=%v",
				req.BookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /room-service - Request created successfully: request_id=%d, booking_id=%d, guest_id=%d",
		request.ID, req.BookingID, guestID)
	handlers.RespondJSON(w, http.StatusCreated, request)
}
