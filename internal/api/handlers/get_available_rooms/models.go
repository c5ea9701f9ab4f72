package get_available_rooms

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	getAvailableRooms "github.com/m04kA/SMC-HotelService/internal/usecase/get_available_rooms"
	"github.com/m04kA/SMC-HotelService/pkg/types"
)

// AvailableRoomsResponse HTTP response model
type AvailableRoomsResponse struct {
	CheckIn  string         `json:"checkIn"`
	CheckOut string         `json:"checkOut"`
	Rooms    []RoomResponse `json:"rooms"`
}

// RoomResponse свободный номер на запрошенный интервал
type RoomResponse struct {
	ID         int64   `json:"id"`
	RoomNumber string  `json:"roomNumber"`
	Type       string  `json:"type"`
	Price      float64 `json:"price"`
	Capacity   int     `json:"capacity"`
	TotalPrice float64 `json:"totalPrice"`
}

// ToUseCaseRequest конвертирует query параметры в модель use case
func ToUseCaseRequest(checkInStr, checkOutStr string, roomType *string, loc *time.Location) (*getAvailableRooms.Request, error) {
	checkInDate, err := types.NewDateStringFromString(checkInStr)
	if err != nil {
		return nil, err
	}
	checkOutDate, err := types.NewDateStringFromString(checkOutStr)
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

	return &getAvailableRooms.Request{
		CheckIn:  checkIn,
		CheckOut: checkOut,
		RoomType: roomType,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableRooms.Response) *AvailableRoomsResponse {
	rooms := make([]RoomResponse, 0, len(resp.Rooms))
	for _, room := range resp.Rooms {
		rooms = append(rooms, RoomResponse{
			ID:         room.ID,
			RoomNumber: room.RoomNumber,
			Type:       room.Type,
			Price:      room.Price,
			Capacity:   room.Capacity,
			TotalPrice: room.TotalPrice,
		})
	}

	return &AvailableRoomsResponse{
		CheckIn:  resp.CheckIn.Format(domain.DateFormat),
		CheckOut: resp.CheckOut.Format(domain.DateFormat),
		Rooms:    rooms,
	}
}
