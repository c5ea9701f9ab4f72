package get_employees

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/staff/models"
)

type StaffService interface {
	ListEmployees(ctx context.Context, department *string) (*models.EmployeeListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
