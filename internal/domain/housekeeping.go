package domain

import "time"

// HousekeepingStatus represents the state of a housekeeping task
type HousekeepingStatus string

const (
	HousekeepingStatusPending    HousekeepingStatus = "pending"
	HousekeepingStatusInProgress HousekeepingStatus = "in_progress"
	HousekeepingStatusCompleted  HousekeepingStatus = "completed"
)

// HousekeepingTask represents a cleaning assignment for a room
type HousekeepingTask struct {
	ID         int64
	RoomID     int64
	EmployeeID int64
	TaskDate   time.Time
	Notes      string
	Status     HousekeepingStatus

	// Denormalized data for listings
	RoomNumber   string
	EmployeeName string

	CompletedAt *time.Time
	CreatedAt   time.Time
}

// IsValidHousekeepingStatus проверяет, что статус задачи допустим
func IsValidHousekeepingStatus(s HousekeepingStatus) bool {
	switch s {
	case HousekeepingStatusPending, HousekeepingStatusInProgress, HousekeepingStatusCompleted:
		return true
	default:
		return false
	}
}

// HousekeepingFilter фильтр для получения задач уборки
type HousekeepingFilter struct {
	Status *HousekeepingStatus // Фильтр по статусу (опционально)
	Date   *time.Time          // Фильтр по дате задачи (опционально)
}
