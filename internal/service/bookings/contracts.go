package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByGuestID(ctx context.Context, guestID int64, includeCancelled bool) ([]*domain.Booking, error)
	GetActiveByGuestID(ctx context.Context, guestID int64, today time.Time) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Cancel(ctx context.Context, id int64, cancelledAt time.Time) error
}

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	UpdateStatus(ctx context.Context, id int64, status domain.RoomStatus) error
}

// RoomServiceRepository интерфейс репозитория запросов рум-сервиса
type RoomServiceRepository interface {
	CountCompletedByBooking(ctx context.Context, bookingID int64) (int, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Config бизнес-политики бронирований
type Config struct {
	CancellationNoticeHours int            // минимальный запас до заезда для отмены
	TaxRate                 float64        // налог, доля от суммы счёта
	RoomServiceCharge       float64        // фиксированная цена выполненного запроса рум-сервиса
	Location                *time.Location // референсная таймзона отеля
}
