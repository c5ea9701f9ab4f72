package update_employee

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/staff/models"
)

type StaffService interface {
	UpdateEmployee(ctx context.Context, id int64, req *models.UpdateEmployeeRequest) (*models.EmployeeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
