package occupancy_report

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// UseCase use case отчёта по заполняемости отеля
type UseCase struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute строит отчёт по заполняемости за окно [StartDate, EndDate]
//
// Бронирования и количество номеров читаются в одной read-only
// транзакции: дневная таблица и средняя не могут разъехаться из-за
// конкурентной записи между двумя запросами
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("OccupancyReport: start=%s, end=%s",
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация окна
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("OccupancyReport: validation failed: %v", err)
		return nil, err
	}

	var bookings []*domain.Booking
	var totalRooms int

	// 2. Консистентное чтение
	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error

		bookings, err = uc.bookingRepo.GetIntersectingWindow(txCtx, req.StartDate, req.EndDate)
		if err != nil {
			uc.logger.Error("OccupancyReport: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		totalRooms, err = uc.roomRepo.CountAll(txCtx)
		if err != nil {
			uc.logger.Error("OccupancyReport: failed to count rooms: %v", err)
			return fmt.Errorf("%w: failed to count rooms: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// 3. Дневная таблица: день занят, если check_in <= d < check_out
	days := make([]Day, 0, domain.DaysBetween(req.StartDate, req.EndDate)+1)
	var rateSum float64

	for d := req.StartDate; !d.After(req.EndDate); d = d.AddDate(0, 0, 1) {
		occupied := 0
		for _, booking := range bookings {
			if booking.OccupiesDay(d) {
				occupied++
			}
		}

		dayOcc := domain.DayOccupancy{Date: d, Occupied: occupied, TotalRooms: totalRooms}
		rate := dayOcc.Rate()
		rateSum += rate

		days = append(days, Day{
			Date:     d,
			Occupied: occupied,
			Rate:     rate,
		})
	}

	// 4. Средняя заполняемость по дням окна
	var average float64
	if len(days) > 0 {
		average = domain.Round2(rateSum / float64(len(days)))
	}

	uc.logger.Info("OccupancyReport: %d days, %d bookings, average=%.2f%%",
		len(days), len(bookings), average)

	return &Response{
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		TotalRooms:  totalRooms,
		Bookings:    len(bookings),
		Days:        days,
		AverageRate: average,
	}, nil
}
