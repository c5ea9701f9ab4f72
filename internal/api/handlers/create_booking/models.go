package create_booking

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	createBooking "github.com/m04kA/SMC-HotelService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-HotelService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RoomID   int64  `json:"roomId"`
	CheckIn  string `json:"checkIn"`  // "2026-07-01"
	CheckOut string `json:"checkOut"` // "2026-07-03"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID         int64   `json:"id"`
	GuestID    int64   `json:"guestId"`
	RoomID     int64   `json:"roomId"`
	CheckIn    string  `json:"checkIn"`
	CheckOut   string  `json:"checkOut"`
	Status     string  `json:"status"`
	Nights     int     `json:"nights"`
	RoomNumber string  `json:"roomNumber"`
	RoomType   string  `json:"roomType"`
	RoomPrice  float64 `json:"roomPrice"`
	TotalPrice float64 `json:"totalPrice"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Даты парсятся как полуночи в таймзоне отеля
func (r *CreateBookingRequest) ToUseCaseRequest(guestID int64, loc *time.Location) (*createBooking.Request, error) {
	checkInDate, err := types.NewDateStringFromString(r.CheckIn)
	if err != nil {
		return nil, err
	}
	checkOutDate, err := types.NewDateStringFromString(r.CheckOut)
	if err != nil {
		return nil, err
	}

	checkIn, err := checkInDate.Time(loc)
	if err != nil {
		return nil, err
	}
	checkOut, err := checkOutDate.Time(loc)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		GuestID:  guestID,
		RoomID:   r.RoomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:         resp.ID,
		GuestID:    resp.GuestID,
		RoomID:     resp.RoomID,
		CheckIn:    resp.CheckIn.Format(domain.DateFormat),
		CheckOut:   resp.CheckOut.Format(domain.DateFormat),
		Status:     resp.Status,
		Nights:     resp.Nights,
		RoomNumber: resp.RoomNumber,
		RoomType:   resp.RoomType,
		RoomPrice:  resp.RoomPrice,
		TotalPrice: resp.TotalPrice,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}
