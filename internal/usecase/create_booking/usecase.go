package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	guestClient "github.com/m04kA/SMC-HotelService/internal/integrations/guestservice"
)

// UseCase use case для создания бронирования
type UseCase struct {
	roomRepo     RoomRepository
	bookingRepo  BookingRepository
	guestClient  GuestServiceClient
	txManager    TransactionManager
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// location - референсная таймзона отеля: "сегодня" для проверки дат
// заезда вычисляется в ней, а не в таймзоне сервера
func NewUseCase(
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	guestClient GuestServiceClient,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:     roomRepo,
		bookingRepo:  bookingRepo,
		guestClient:  guestClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка пересечений и вставка выполняются в одной сериализуемой
// транзакции: две конкурентные брони одного номера на пересекающиеся
// даты не могут зафиксироваться обе
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: guest=%d, room=%d, check_in=%s, check_out=%s",
		req.GuestID, req.RoomID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование гостя во внешнем сервисе
	if _, err := uc.guestClient.GetGuest(ctx, req.GuestID); err != nil {
		if errors.Is(err, guestClient.ErrGuestNotFound) {
			uc.logger.Warn("CreateBooking: guest id=%d not found", req.GuestID)
			return nil, ErrGuestNotFound
		}
		uc.logger.Error("CreateBooking: failed to get guest id=%d: %v", req.GuestID, err)
		return nil, fmt.Errorf("%w: failed to get guest: %v", ErrInternal, err)
	}

	// 3. Сегодняшняя дата в таймзоне отеля
	now := uc.timeProvider.Now()
	today := midnight(now, uc.location)

	if req.CheckIn.Before(today) {
		uc.logger.Warn("CreateBooking: check_in=%s is before today=%s",
			req.CheckIn.Format(domain.DateFormat), today.Format(domain.DateFormat))
		return nil, ErrPastCheckIn
	}

	var result *domain.Booking
	var room *domain.Room

	// 4. Проверка доступности и вставка в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем номер с блокировкой (FOR UPDATE)
		fetched, err := uc.roomRepo.GetByID(txCtx, req.RoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("CreateBooking: room id=%d not found", req.RoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("CreateBooking: failed to get room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}
		room = fetched

		// 4.2. Перепроверяем пересечения внутри транзакции
		overlapping, err := uc.bookingRepo.GetOverlappingForRoom(txCtx, req.RoomID, req.CheckIn, req.CheckOut)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get overlapping bookings: %v", err)
			return fmt.Errorf("%w: failed to get overlapping bookings: %v", ErrInternal, err)
		}

		if hasOverlap(overlapping, req.CheckIn, req.CheckOut) {
			uc.logger.Warn("CreateBooking: room id=%d is unavailable for [%s, %s)",
				req.RoomID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat))
			return ErrRoomUnavailable
		}

		// 4.3. Создаем бронирование
		booking := &domain.Booking{
			RoomID:   req.RoomID,
			GuestID:  req.GuestID,
			CheckIn:  req.CheckIn,
			CheckOut: req.CheckOut,
			Status:   domain.BookingStatusConfirmed,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 4.4. Заезд сегодня - обновляем кэшированный статус номера
		if created.CheckIn.Equal(today) {
			if err := uc.roomRepo.UpdateStatus(txCtx, room.ID, domain.RoomStatusOccupied); err != nil {
				uc.logger.Error("CreateBooking: failed to update room status: %v", err)
				return fmt.Errorf("%w: failed to update room status: %v", ErrInternal, err)
			}
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	nights := result.Nights()

	return &Response{
		ID:         result.ID,
		GuestID:    result.GuestID,
		RoomID:     result.RoomID,
		CheckIn:    result.CheckIn,
		CheckOut:   result.CheckOut,
		Status:     string(result.Status),
		Nights:     nights,
		RoomNumber: room.RoomNumber,
		RoomType:   string(room.Type),
		RoomPrice:  room.Price,
		TotalPrice: domain.Round2(float64(nights) * room.Price),
		CreatedAt:  result.CreatedAt,
		UpdatedAt:  result.UpdatedAt,
	}, nil
}
