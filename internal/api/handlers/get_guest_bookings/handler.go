package get_guest_bookings

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelService/internal/service/bookings/models"
)

const (
	msgInvalidGuestID = "некорректный ID гостя"
	msgMissingUserID  = "отсутствует ID пользователя"
	msgForbidden      = "доступ запрещен"
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

// Handle GET /api/v1/guests/{guestId}/bookings
// Query params: includeCancelled (optional), active (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем guestId из URL
	vars := mux.Vars(r)
	guestIDStr := vars["guestId"]

	guestID, err := strconv.ParseInt(guestIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /guests/{guestId}/bookings - Invalid guest ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGuestID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /guests/{guestId}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Гость видит только собственную историю
	if userID != guestID {
		h.logger.Warn("GET /guests/{guestId}/bookings - Access denied: guest_id=%d, user_id=%d", guestID, userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	query := r.URL.Query()

	// active=true возвращает только текущие бронирования
	if query.Get("active") == "true" {
		result, err := h.service.GetActiveBookings(r.Context(), guestID)
		if err != nil {
			h.logger.Error("GET /guests/{guestId}/bookings - Failed to get active bookings: guest_id=%d, error=%v",
				guestID, err)
			handlers.RespondInternalError(w)
			return
		}

		h.logger.Info("GET /guests/{guestId}/bookings - Active bookings retrieved: guest_id=%d, count=%d",
			guestID, len(result.Bookings))
		handlers.RespondJSON(w, http.StatusOK, result)
		return
	}

	serviceReq := &models.GetGuestBookingsRequest{
		GuestID:          guestID,
		IncludeCancelled: query.Get("includeCancelled") == "true",
	}

	result, err := h.service.GetGuestBookings(r.Context(), serviceReq)
	if err != nil {
		h.logger.Error("GET /guests/{guestId}/bookings - Failed to get bookings: guest_id=%d, error=%v",
			guestID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /guests/{guestId}/bookings - Bookings retrieved successfully: guest_id=%d, count=%d",
		guestID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
