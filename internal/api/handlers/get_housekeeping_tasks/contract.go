package get_housekeeping_tasks

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/staff/models"
)

type StaffService interface {
	ListTasks(ctx context.Context, req *models.ListTasksRequest) (*models.TaskListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
