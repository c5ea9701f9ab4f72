package revenue_report

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// UseCase use case отчёта по выручке
type UseCase struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute строит отчёт по выручке за окно [StartDate, EndDate]
//
// Выручка бронирования считается по ночам, попавшим в окно:
// nights = min(check_out, end+1d) - max(check_in, start), не меньше 0.
// Бронирование, чей интервал лишь граничит с окном, даёт 0 ночей и
// 0 выручки, но остаётся в списке рассмотренных.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RevenueReport: start=%s, end=%s",
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация окна
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RevenueReport: validation failed: %v", err)
		return nil, err
	}

	var bookings []*domain.Booking

	// 2. Консистентное чтение
	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error

		bookings, err = uc.bookingRepo.GetIntersectingWindow(txCtx, req.StartDate, req.EndDate)
		if err != nil {
			uc.logger.Error("RevenueReport: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// 3. Выручка по бронированиям, обрезанная по окну
	rows := make([]BookingRevenue, 0, len(bookings))
	byRoomType := make(map[string]float64)
	var total float64

	for _, booking := range bookings {
		nights := domain.BillableNights(booking.CheckIn, booking.CheckOut, req.StartDate, req.EndDate)
		amount := domain.Round2(float64(nights) * booking.RoomPrice)

		rows = append(rows, BookingRevenue{
			BookingID:  booking.ID,
			RoomNumber: booking.RoomNumber,
			RoomType:   string(booking.RoomType),
			GuestID:    booking.GuestID,
			Nights:     nights,
			Amount:     amount,
		})

		total += amount
		byRoomType[string(booking.RoomType)] += amount
	}

	total = domain.Round2(total)
	for roomType, amount := range byRoomType {
		byRoomType[roomType] = domain.Round2(amount)
	}

	uc.logger.Info("RevenueReport: %d bookings, total=%.2f", len(rows), total)

	return &Response{
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Bookings:     rows,
		TotalRevenue: total,
		ByRoomType:   byRoomType,
	}, nil
}
