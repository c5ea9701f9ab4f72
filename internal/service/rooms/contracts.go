package rooms

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	List(ctx context.Context, filter domain.RoomsFilter) ([]*domain.Room, error)
	Update(ctx context.Context, id int64, upd domain.RoomUpdate) error
	UpdateStatus(ctx context.Context, id int64, status domain.RoomStatus) error
	CountAll(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status domain.RoomStatus) (int, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	CountActive(ctx context.Context) (int, error)
}

// EmployeeRepository интерфейс репозитория персонала
type EmployeeRepository interface {
	CountAll(ctx context.Context) (int, error)
}

// InventoryRepository интерфейс репозитория склада
type InventoryRepository interface {
	CountLowStock(ctx context.Context) (int, error)
	CountOrdersByStatus(ctx context.Context, status domain.OrderStatus) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
