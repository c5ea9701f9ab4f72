package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelService/internal/service/bookings"
	"github.com/m04kA/SMC-HotelService/internal/service/bookings/models"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgNotFound         = "бронирование не найдено"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgCannotCancel     = "бронирование не может быть отменено"
	msgTooLateToCancel  = "до заезда осталось меньше суток, отмена недоступна"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем bookingId из URL
	vars := mux.Vars(r)
	bookingIDStr := vars["bookingId"]

	bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	// Получаем guestID из контекста (через middleware Auth)
	guestID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Отменяем бронирование
	err = h.service.Cancel(r.Context(), bookingID, &models.CancelBookingRequest{GuestID: guestID})
	if err != nil {
		switch {
		// Чужое бронирование не раскрываем, отвечаем как на отсутствующее
		case errors.Is(err, bookings.ErrInvalidBooking):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Booking not found or not owned: booking_id=%d, guest_id=%d",
				bookingID, guestID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrWithinCancellationWindow):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Within cancellation window: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgTooLateToCancel)

		case errors.Is(err, bookings.ErrNotCancellable):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Cannot cancel: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgCannotCancel)

		default:
			h.logger.Error("PATCH /bookings/{id}/cancel - Failed to cancel booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/cancel - Booking cancelled successfully: booking_id=%d, guest_id=%d",
		bookingID, guestID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
