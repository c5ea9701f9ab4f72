package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBookingOverlaps(t *testing.T) {
	booking := &Booking{
		CheckIn:  date(2026, 7, 10),
		CheckOut: date(2026, 7, 15),
	}

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     bool
	}{
		{"полное совпадение", date(2026, 7, 10), date(2026, 7, 15), true},
		{"внутри интервала", date(2026, 7, 11), date(2026, 7, 14), true},
		{"пересечение слева", date(2026, 7, 8), date(2026, 7, 11), true},
		{"пересечение справа", date(2026, 7, 14), date(2026, 7, 20), true},
		{"охватывает целиком", date(2026, 7, 1), date(2026, 7, 31), true},
		{"заезд в день выезда", date(2026, 7, 15), date(2026, 7, 18), false},
		{"выезд в день заезда", date(2026, 7, 5), date(2026, 7, 10), false},
		{"полностью до", date(2026, 7, 1), date(2026, 7, 5), false},
		{"полностью после", date(2026, 7, 20), date(2026, 7, 25), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booking.Overlaps(tt.checkIn, tt.checkOut))
		})
	}
}

func TestBookingOccupiesDay(t *testing.T) {
	booking := &Booking{
		CheckIn:  date(2026, 7, 1),
		CheckOut: date(2026, 7, 3),
	}

	assert.True(t, booking.OccupiesDay(date(2026, 7, 1)))
	assert.True(t, booking.OccupiesDay(date(2026, 7, 2)))
	// День выезда не занят
	assert.False(t, booking.OccupiesDay(date(2026, 7, 3)))
	assert.False(t, booking.OccupiesDay(date(2026, 6, 30)))
}

func TestBookingNights(t *testing.T) {
	booking := &Booking{
		CheckIn:  date(2026, 7, 1),
		CheckOut: date(2026, 7, 3),
	}
	assert.Equal(t, 2, booking.Nights())
}

func TestDaysBetweenAcrossDST(t *testing.T) {
	// Ночь перехода на летнее время короче на час, но это всё ещё одна ночь
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata not available")
	}

	from := time.Date(2026, 3, 7, 0, 0, 0, 0, loc)
	to := time.Date(2026, 3, 9, 0, 0, 0, 0, loc)
	assert.Equal(t, 2, DaysBetween(from, to))
}

func TestBillableNights(t *testing.T) {
	tests := []struct {
		name        string
		checkIn     time.Time
		checkOut    time.Time
		windowStart time.Time
		windowEnd   time.Time
		want        int
	}{
		{
			"бронирование целиком внутри окна",
			date(2026, 7, 10), date(2026, 7, 12),
			date(2026, 7, 1), date(2026, 7, 31),
			2,
		},
		{
			"обрезано началом окна",
			date(2026, 6, 28), date(2026, 7, 3),
			date(2026, 7, 1), date(2026, 7, 31),
			2,
		},
		{
			"обрезано концом окна",
			date(2026, 7, 30), date(2026, 8, 3),
			date(2026, 7, 1), date(2026, 7, 31),
			2,
		},
		{
			"выезд в первый день окна",
			date(2026, 6, 28), date(2026, 7, 1),
			date(2026, 7, 1), date(2026, 7, 31),
			0,
		},
		{
			"заезд в последний день окна",
			date(2026, 7, 31), date(2026, 8, 2),
			date(2026, 7, 1), date(2026, 7, 31),
			1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BillableNights(tt.checkIn, tt.checkOut, tt.windowStart, tt.windowEnd)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBookingStatusHelpers(t *testing.T) {
	confirmed := &Booking{Status: BookingStatusConfirmed}
	checkedIn := &Booking{Status: BookingStatusCheckedIn}
	checkedOut := &Booking{Status: BookingStatusCheckedOut}
	cancelled := &Booking{Status: BookingStatusCancelled}

	assert.True(t, confirmed.IsActive())
	assert.True(t, checkedIn.IsActive())
	assert.False(t, checkedOut.IsActive())
	assert.False(t, cancelled.IsActive())

	assert.True(t, confirmed.CanBeCancelled())
	assert.True(t, checkedIn.CanBeCancelled())
	assert.False(t, checkedOut.CanBeCancelled())
	assert.False(t, cancelled.CanBeCancelled())

	assert.True(t, cancelled.IsCancelled())
	assert.False(t, confirmed.IsCancelled())
}
