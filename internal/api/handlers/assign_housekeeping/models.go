package assign_housekeeping

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/service/staff/models"
	"github.com/m04kA/SMC-HotelService/pkg/types"
)

// AssignTaskRequest HTTP request model
type AssignTaskRequest struct {
	RoomID     int64  `json:"roomId"`
	EmployeeID int64  `json:"employeeId"`
	TaskDate   string `json:"taskDate"` // "2026-07-01"
	Notes      string `json:"notes,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *AssignTaskRequest) ToServiceRequest(loc *time.Location) (*models.AssignTaskRequest, error) {
	taskDate, err := types.NewDateStringFromString(r.TaskDate)
	if err != nil {
		return nil, err
	}

	date, err := taskDate.Time(loc)
	if err != nil {
		return nil, err
	}

	return &models.AssignTaskRequest{
		RoomID:     r.RoomID,
		EmployeeID: r.EmployeeID,
		TaskDate:   date,
		Notes:      r.Notes,
	}, nil
}
