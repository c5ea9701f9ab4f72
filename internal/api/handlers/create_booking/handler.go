package create_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-HotelService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidDateRange   = "дата выезда должна быть позже даты заезда"
	msgPastCheckIn        = "дата заезда уже прошла"
	msgGuestNotFound      = "гость не найден"
	msgRoomNotFound       = "номер не найден"
	msgRoomUnavailable    = "номер занят на выбранные даты"
)

type Handler struct {
	useCase  CreateBookingUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase CreateBookingUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Гость берется из контекста (middleware Auth), а не из тела запроса
	guestID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest(guestID, h.location)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrRoomUnavailable):
			h.logger.Warn("POST /bookings - Room unavailable: guest_id=%d, room_id=%d", guestID, req.RoomID)
			handlers.RespondError(w, http.StatusConflict, msgRoomUnavailable)

		case errors.Is(err, createBooking.ErrGuestNotFound):
			h.logger.Warn("POST /bookings - Guest not found: guest_id=%d", guestID)
			handlers.RespondNotFound(w, msgGuestNotFound)

		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: guest_id=%d, room_id=%d", guestID, req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrInvalidDateRange):
			h.logger.Warn("POST /bookings - Invalid date range: guest_id=%d, room_id=%d", guestID, req.RoomID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, createBooking.ErrPastCheckIn):
			h.logger.Warn("POST /bookings - Check-in in the past: guest_id=%d, room_id=%d", guestID, req.RoomID)
			handlers.RespondBadRequest(w, msgPastCheckIn)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: guest_id=%d, room_id=%d", guestID, req.RoomID)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: guest_id=%d, room_id=%d, error=%v",
				guestID, req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, guest_id=%d, room_id=%d",
		result.ID, guestID, req.RoomID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
