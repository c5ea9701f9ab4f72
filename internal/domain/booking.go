package domain

import (
	"math"
	"time"
)

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusCheckedIn  BookingStatus = "checked_in"
	BookingStatusCheckedOut BookingStatus = "checked_out"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

// Booking represents a room reservation for a half-open date interval
// [CheckIn, CheckOut): день выезда не занят, поэтому выезд и новый заезд
// в один календарный день не конфликтуют
type Booking struct {
	ID      int64
	RoomID  int64
	GuestID int64

	CheckIn  time.Time // полночь в таймзоне отеля
	CheckOut time.Time
	Status   BookingStatus

	// Denormalized room data for history and reports
	RoomNumber string
	RoomType   RoomType
	RoomPrice  float64

	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsActive returns true if the booking occupies its room
func (b *Booking) IsActive() bool {
	return b.Status == BookingStatusConfirmed || b.Status == BookingStatusCheckedIn
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}

// CanBeCancelled returns true if the booking is in a cancellable state
func (b *Booking) CanBeCancelled() bool {
	return b.Status == BookingStatusConfirmed || b.Status == BookingStatusCheckedIn
}

// Overlaps проверяет пересечение с интервалом [checkIn, checkOut)
// Полуоткрытые интервалы [a,b) и [c,d) пересекаются тогда и только тогда,
// когда a < d и c < b; граничащие интервалы не пересекаются
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return b.CheckIn.Before(checkOut) && checkIn.Before(b.CheckOut)
}

// OccupiesDay проверяет, что номер занят в календарный день d
// День занят, если check_in <= d < check_out (день выезда не считается)
func (b *Booking) OccupiesDay(d time.Time) bool {
	return !d.Before(b.CheckIn) && d.Before(b.CheckOut)
}

// Nights возвращает количество ночей бронирования
func (b *Booking) Nights() int {
	return DaysBetween(b.CheckIn, b.CheckOut)
}

// DaysBetween возвращает количество календарных дней между двумя полуночами
// Округление до ближайшего дня компенсирует переходы на летнее время
func DaysBetween(from, to time.Time) int {
	return int(math.Round(to.Sub(from).Hours() / 24))
}

// BillableNights возвращает количество оплачиваемых ночей бронирования,
// обрезанных по отчётному окну [windowStart, windowEnd] (включительно)
//
// nights = min(check_out, windowEnd+1d) - max(check_in, windowStart), не меньше 0
func BillableNights(checkIn, checkOut, windowStart, windowEnd time.Time) int {
	start := checkIn
	if windowStart.After(start) {
		start = windowStart
	}

	end := checkOut
	if boundary := windowEnd.AddDate(0, 0, 1); boundary.Before(end) {
		end = boundary
	}

	nights := DaysBetween(start, end)
	if nights < 0 {
		return 0
	}
	return nights
}
