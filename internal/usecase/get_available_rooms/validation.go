package get_available_rooms

import (
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CheckIn.IsZero() {
		return fmt.Errorf("%w: checkIn is required", ErrInvalidInput)
	}

	if req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkOut is required", ErrInvalidInput)
	}

	if !req.CheckIn.Before(req.CheckOut) {
		return ErrInvalidDateRange
	}

	if req.RoomType != nil && !domain.IsValidRoomType(domain.RoomType(*req.RoomType)) {
		return fmt.Errorf("%w: unknown room type %q", ErrInvalidInput, *req.RoomType)
	}

	return nil
}
