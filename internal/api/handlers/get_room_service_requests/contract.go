package get_room_service_requests

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/roomservice/models"
)

type RoomServiceService interface {
	List(ctx context.Context, status *string) (*models.RequestListResponse, error)
	GetGuestRequests(ctx context.Context, guestID int64) (*models.RequestListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
