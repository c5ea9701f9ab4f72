package create_room_service

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/roomservice/models"
)

type RoomServiceService interface {
	Create(ctx context.Context, req *models.CreateRequest) (*models.RequestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
