package domain

import "time"

// RoomServiceStatus represents the state of an in-stay service request
type RoomServiceStatus string

const (
	RoomServiceStatusPending    RoomServiceStatus = "pending"
	RoomServiceStatusInProgress RoomServiceStatus = "in_progress"
	RoomServiceStatusCompleted  RoomServiceStatus = "completed"
	RoomServiceStatusCancelled  RoomServiceStatus = "cancelled"
)

// RoomServiceRequest represents a guest request tied to an active booking
type RoomServiceRequest struct {
	ID          int64
	BookingID   int64
	ServiceType string
	Notes       string
	Status      RoomServiceStatus

	// Denormalized data for listings
	RoomNumber string
	GuestID    int64

	RequestedAt time.Time
	CompletedAt *time.Time
}

// CanBeCancelled returns true if the request has not been fulfilled yet
func (r *RoomServiceRequest) CanBeCancelled() bool {
	return r.Status == RoomServiceStatusPending || r.Status == RoomServiceStatusInProgress
}

// IsValidRoomServiceStatus проверяет, что статус запроса допустим
func IsValidRoomServiceStatus(s RoomServiceStatus) bool {
	switch s {
	case RoomServiceStatusPending, RoomServiceStatusInProgress,
		RoomServiceStatusCompleted, RoomServiceStatusCancelled:
		return true
	default:
		return false
	}
}
