package cancel_room_service

import "context"

type RoomServiceService interface {
	Cancel(ctx context.Context, id int64, guestID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
