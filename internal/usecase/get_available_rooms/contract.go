package get_available_rooms

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	ListAvailable(ctx context.Context, checkIn, checkOut time.Time, roomType *domain.RoomType) ([]*domain.Room, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
