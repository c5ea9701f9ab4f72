package roomservice

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// RoomServiceRepository интерфейс репозитория запросов рум-сервиса
type RoomServiceRepository interface {
	Create(ctx context.Context, request *domain.RoomServiceRequest) (*domain.RoomServiceRequest, error)
	GetByID(ctx context.Context, id int64) (*domain.RoomServiceRequest, error)
	GetByGuestID(ctx context.Context, guestID int64) ([]*domain.RoomServiceRequest, error)
	List(ctx context.Context, status *domain.RoomServiceStatus) ([]*domain.RoomServiceRequest, error)
	UpdateStatus(ctx context.Context, id int64, status domain.RoomServiceStatus, completedAt *time.Time) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
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
