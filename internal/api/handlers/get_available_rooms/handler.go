package get_available_rooms

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	getAvailableRooms "github.com/m04kA/SMC-HotelService/internal/usecase/get_available_rooms"
)

const (
	msgMissingCheckIn   = "дата заезда обязательна"
	msgMissingCheckOut  = "дата выезда обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDateRange = "дата выезда должна быть позже даты заезда"
	msgInvalidRoomType  = "некорректный тип номера"
)

type Handler struct {
	useCase  GetAvailableRoomsUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase GetAvailableRoomsUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/rooms/available
// Query params: checkIn (required), checkOut (required), type (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	checkInStr := query.Get("checkIn")
	if checkInStr == "" {
		h.logger.Warn("GET /rooms/available - Missing check-in date")
		handlers.RespondBadRequest(w, msgMissingCheckIn)
		return
	}

	checkOutStr := query.Get("checkOut")
	if checkOutStr == "" {
		h.logger.Warn("GET /rooms/available - Missing check-out date")
		handlers.RespondBadRequest(w, msgMissingCheckOut)
		return
	}

	var roomType *string
	if t := query.Get("type"); t != "" {
		roomType = &t
	}

	// Формируем запрос к use case (с парсингом дат)
	useCaseReq, err := ToUseCaseRequest(checkInStr, checkOutStr, roomType, h.location)
	if err != nil {
		h.logger.Warn("GET /rooms/available - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableRooms.ErrInvalidDateRange):
			h.logger.Warn("GET /rooms/available - Invalid date range: check_in=%s, check_out=%s",
				checkInStr, checkOutStr)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, getAvailableRooms.ErrInvalidInput):
			h.logger.Warn("GET /rooms/available - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRoomType)

		default:
			h.logger.Error("GET /rooms/available - Failed to get rooms: check_in=%s, check_out=%s, error=%v",
				checkInStr, checkOutStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /rooms/available - Rooms retrieved successfully: check_in=%s, check_out=%s, rooms_count=%d",
		checkInStr, checkOutStr, len(result.Rooms))
	handlers.RespondJSON(w, http.StatusOK, response)
}
