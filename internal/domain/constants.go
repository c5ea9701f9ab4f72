package domain

// Default configuration values
const (
	DefaultCancellationNoticeHours = 24
	DefaultTaxRate                 = 0.10
	DefaultRoomServiceCharge       = 25.0
)

// Business validation constants
const (
	MinRoomCapacity    = 1
	MaxRoomCapacity    = 12
	MaxNotesLength     = 500
	LowStockThreshold  = 10
	MaxReportRangeDays = 366
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveBookingStatuses статусы, при которых бронирование занимает номер
// Используется при проверке конфликтов интервалов
var ActiveBookingStatuses = []BookingStatus{
	BookingStatusConfirmed,
	BookingStatusCheckedIn,
}
