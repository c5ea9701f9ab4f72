package occupancy_report

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	occupancyReport "github.com/m04kA/SMC-HotelService/internal/usecase/occupancy_report"
	"github.com/m04kA/SMC-HotelService/pkg/types"
)

// OccupancyReportResponse HTTP response model
type OccupancyReportResponse struct {
	StartDate   string        `json:"startDate"`
	EndDate     string        `json:"endDate"`
	TotalRooms  int           `json:"totalRooms"`
	Bookings    int           `json:"bookings"`
	Days        []DayResponse `json:"days"`
	AverageRate float64       `json:"averageRate"`
}

// DayResponse заполняемость на один день
type DayResponse struct {
	Date     string  `json:"date"`
	Occupied int     `json:"occupied"`
	Rate     float64 `json:"rate"`
}

// ToUseCaseRequest конвертирует query параметры в модель use case
func ToUseCaseRequest(startStr, endStr string, loc *time.Location) (*occupancyReport.Request, error) {
	startDate, err := types.NewDateStringFromString(startStr)
	if err != nil {
		return nil, err
	}
	endDate, err := types.NewDateStringFromString(endStr)
	if err != nil {
		return nil, err
	}

	start, err := startDate.Time(loc)
	if err != nil {
		return nil, err
	}
	end, err := endDate.Time(loc)
	if err != nil {
		return nil, err
	}

	return &occupancyReport.Request{
		StartDate: start,
		EndDate:   end,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *occupancyReport.Response) *OccupancyReportResponse {
	days := make([]DayResponse, 0, len(resp.Days))
	for _, day := range resp.Days {
		days = append(days, DayResponse{
			Date:     day.Date.Format(domain.DateFormat),
			Occupied: day.Occupied,
			Rate:     day.Rate,
		})
	}

	return &OccupancyReportResponse{
		StartDate:   resp.StartDate.Format(domain.DateFormat),
		EndDate:     resp.EndDate.Format(domain.DateFormat),
		TotalRooms:  resp.TotalRooms,
		Bookings:    resp.Bookings,
		Days:        days,
		AverageRate: resp.AverageRate,
	}
}
