package add_employee

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/staff/models"
)

type StaffService interface {
	AddEmployee(ctx context.Context, req *models.AddEmployeeRequest) (*models.EmployeeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
