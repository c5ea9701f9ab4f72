package assign_housekeeping

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/staff/models"
)

type StaffService interface {
	AssignTask(ctx context.Context, req *models.AssignTaskRequest) (*models.TaskResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
