package get_available_rooms

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// UseCase use case для поиска свободных номеров на диапазон дат
type UseCase struct {
	roomRepo RoomRepository
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(roomRepo RoomRepository, logger Logger) *UseCase {
	return &UseCase{
		roomRepo: roomRepo,
		logger:   logger,
	}
}

// Execute выполняет use case поиска свободных номеров
// Доступность вычисляется по пересечениям интервалов активных
// бронирований; кэшированный статус номера не участвует в выборке.
// Операция не имеет побочных эффектов.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableRooms: check_in=%s, check_out=%s",
		req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableRooms: validation failed: %v", err)
		return nil, err
	}

	// 2. Опциональный фильтр по типу номера
	var roomType *domain.RoomType
	if req.RoomType != nil {
		t := domain.RoomType(*req.RoomType)
		roomType = &t
	}

	// 3. Выбираем номера без пересекающихся активных бронирований
	rooms, err := uc.roomRepo.ListAvailable(ctx, req.CheckIn, req.CheckOut, roomType)
	if err != nil {
		uc.logger.Error("GetAvailableRooms: failed to list available rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list available rooms: %v", ErrInternal, err)
	}

	nights := domain.DaysBetween(req.CheckIn, req.CheckOut)

	result := make([]Room, 0, len(rooms))
	for _, room := range rooms {
		result = append(result, Room{
			ID:         room.ID,
			RoomNumber: room.RoomNumber,
			Type:       string(room.Type),
			Price:      room.Price,
			Capacity:   room.Capacity,
			TotalPrice: domain.Round2(float64(nights) * room.Price),
		})
	}

	uc.logger.Info("GetAvailableRooms: found %d available rooms for [%s, %s)",
		len(result), req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat))

	return &Response{
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		Rooms:    result,
	}, nil
}
