package staff

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// EmployeeRepository интерфейс репозитория персонала
type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	List(ctx context.Context, department *string) ([]*domain.Employee, error)
	Update(ctx context.Context, id int64, upd domain.EmployeeUpdate) error
	Delete(ctx context.Context, id int64) error
}

// HousekeepingRepository интерфейс репозитория задач уборки
type HousekeepingRepository interface {
	Create(ctx context.Context, task *domain.HousekeepingTask) (*domain.HousekeepingTask, error)
	GetByID(ctx context.Context, id int64) (*domain.HousekeepingTask, error)
	List(ctx context.Context, filter domain.HousekeepingFilter) ([]*domain.HousekeepingTask, error)
	UpdateStatus(ctx context.Context, id int64, status domain.HousekeepingStatus, completedAt *time.Time) error
	CountByEmployee(ctx context.Context, employeeID int64) (int, error)
}

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
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
