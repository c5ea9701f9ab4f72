package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.GuestID <= 0 {
		return fmt.Errorf("%w: guestID must be positive", ErrInvalidInput)
	}

	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() {
		return fmt.Errorf("%w: checkIn is required", ErrInvalidInput)
	}

	if req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkOut is required", ErrInvalidInput)
	}

	// Хотя бы одна ночь: выезд строго позже заезда
	if !req.CheckIn.Before(req.CheckOut) {
		return ErrInvalidDateRange
	}

	return nil
}

// midnight обнуляет время, оставляя календарную дату в таймзоне loc
func midnight(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// hasOverlap проверяет наличие активного бронирования, пересекающего
// полуоткрытый интервал [checkIn, checkOut)
func hasOverlap(bookings []*domain.Booking, checkIn, checkOut time.Time) bool {
	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		if booking.Overlaps(checkIn, checkOut) {
			return true
		}
	}
	return false
}
