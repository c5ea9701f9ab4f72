package update_room_status

import "context"

type RoomService interface {
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
