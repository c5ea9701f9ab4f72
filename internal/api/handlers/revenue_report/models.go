package revenue_report

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	revenueReport "github.com/m04kA/SMC-HotelService/internal/usecase/revenue_report"
	"github.com/m04kA/SMC-HotelService/pkg/types"
)

// RevenueReportResponse HTTP response model
type RevenueReportResponse struct {
	StartDate    string                   `json:"startDate"`
	EndDate      string                   `json:"endDate"`
	Bookings     []BookingRevenueResponse `json:"bookings"`
	TotalRevenue float64                  `json:"totalRevenue"`
	ByRoomType   map[string]float64       `json:"byRoomType"`
}

// BookingRevenueResponse выручка одного бронирования внутри окна
type BookingRevenueResponse struct {
	BookingID  int64   `json:"bookingId"`
	RoomNumber string  `json:"roomNumber"`
	RoomType   string  `json:"roomType"`
	GuestID    int64   `json:"guestId"`
	Nights     int     `json:"nights"`
	Amount     float64 `json:"amount"`
}

// ToUseCaseRequest конвертирует query параметры в модель use case
func ToUseCaseRequest(startStr, endStr string, loc *time.Location) (*revenueReport.Request, error) {
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

	return &revenueReport.Request{
		StartDate: start,
		EndDate:   end,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *revenueReport.Response) *RevenueReportResponse {
	bookings := make([]BookingRevenueResponse, 0, len(resp.Bookings))
	for _, booking := range resp.Bookings {
		bookings = append(bookings, BookingRevenueResponse{
			BookingID:  booking.BookingID,
			RoomNumber: booking.RoomNumber,
			RoomType:   booking.RoomType,
			GuestID:    booking.GuestID,
			Nights:     booking.Nights,
			Amount:     booking.Amount,
		})
	}

	return &RevenueReportResponse{
		StartDate:    resp.StartDate.Format(domain.DateFormat),
		EndDate:      resp.EndDate.Format(domain.DateFormat),
		Bookings:     bookings,
		TotalRevenue: resp.TotalRevenue,
		ByRoomType:   resp.ByRoomType,
	}
}
