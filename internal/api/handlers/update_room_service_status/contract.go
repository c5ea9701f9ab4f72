package update_room_service_status

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/roomservice/models"
)

type RoomServiceService interface {
	UpdateStatus(ctx context.Context, id int64, status string) (*models.RequestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
