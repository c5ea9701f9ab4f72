package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-HotelService/internal/service/bookings/models"
)

// Service сервис жизненного цикла бронирований
type Service struct {
	bookingRepo     BookingRepository
	roomRepo        RoomRepository
	roomServiceRepo RoomServiceRepository
	cfg             Config
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	roomServiceRepo RoomServiceRepository,
	cfg Config,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:     bookingRepo,
		roomRepo:        roomRepo,
		roomServiceRepo: roomServiceRepo,
		cfg:             cfg,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
// Гость может видеть только своё бронирование
func (s *Service) GetByID(ctx context.Context, id int64, guestID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for guest=%d", id, guestID)

	booking, err := s.getBooking(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}

	if booking.GuestID != guestID {
		s.logger.Warn("GetByID: access denied for guest=%d to booking id=%d", guestID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetGuestBookings получает историю бронирований гостя
// Отменённые включаются только по явному запросу
func (s *Service) GetGuestBookings(ctx context.Context, req *models.GetGuestBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetGuestBookings: fetching bookings for guest=%d, includeCancelled=%v",
		req.GuestID, req.IncludeCancelled)

	bookings, err := s.bookingRepo.GetByGuestID(ctx, req.GuestID, req.IncludeCancelled)
	if err != nil {
		s.logger.Error("GetGuestBookings: repository error for guest=%d: %v", req.GuestID, err)
		return nil, fmt.Errorf("%w: GetGuestBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetGuestBookings: fetched %d bookings for guest=%d", len(bookings), req.GuestID)
	return models.FromDomainBookingList(bookings), nil
}

// GetActiveBookings получает текущие и предстоящие бронирования гостя
func (s *Service) GetActiveBookings(ctx context.Context, guestID int64) (*models.BookingListResponse, error) {
	s.logger.Info("GetActiveBookings: fetching active bookings for guest=%d", guestID)

	today := s.today()

	bookings, err := s.bookingRepo.GetActiveByGuestID(ctx, guestID, today)
	if err != nil {
		s.logger.Error("GetActiveBookings: repository error for guest=%d: %v", guestID, err)
		return nil, fmt.Errorf("%w: GetActiveBookings - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование гостя
//
// Принадлежность перепроверяется здесь независимо от вызывающего слоя.
// Отмена запрещена, если до заезда осталось меньше обязательного запаса
// (cancellation_notice_hours); правило действует и после заезда
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by guest=%d", bookingID, req.GuestID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrInvalidBooking
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if booking.GuestID != req.GuestID {
		s.logger.Warn("Cancel: booking id=%d does not belong to guest=%d", bookingID, req.GuestID)
		return ErrInvalidBooking
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrNotCancellable
	}

	now := s.timeProvider.Now().In(s.cfg.Location)
	notice := time.Duration(s.cfg.CancellationNoticeHours) * time.Hour

	if booking.CheckIn.Sub(now) < notice {
		s.logger.Warn("Cancel: booking id=%d is within the %dh cancellation window",
			bookingID, s.cfg.CancellationNoticeHours)
		return ErrWithinCancellationWindow
	}

	priorStatus := booking.Status

	if err := s.bookingRepo.Cancel(ctx, bookingID, now); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrInvalidBooking
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Гость уже заселён - возвращаем кэшированный статус номера
	if priorStatus == domain.BookingStatusCheckedIn {
		if err := s.roomRepo.UpdateStatus(ctx, booking.RoomID, domain.RoomStatusAvailable); err != nil {
			s.logger.Error("Cancel: failed to revert room id=%d status: %v", booking.RoomID, err)
			return fmt.Errorf("%w: Cancel - failed to revert room status: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// CheckIn заселяет гостя: confirmed -> checked_in, номер помечается занятым
func (s *Service) CheckIn(ctx context.Context, bookingID int64) (*models.BookingResponse, error) {
	s.logger.Info("CheckIn: booking id=%d", bookingID)

	booking, err := s.getBooking(ctx, bookingID, "CheckIn")
	if err != nil {
		return nil, err
	}

	if booking.Status != domain.BookingStatusConfirmed {
		s.logger.Warn("CheckIn: booking id=%d has status=%s, expected confirmed", bookingID, booking.Status)
		return nil, ErrInvalidStatusTransition
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.BookingStatusCheckedIn); err != nil {
		s.logger.Error("CheckIn: failed to update booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: CheckIn - repository error: %v", ErrInternal, err)
	}

	if err := s.roomRepo.UpdateStatus(ctx, booking.RoomID, domain.RoomStatusOccupied); err != nil {
		s.logger.Error("CheckIn: failed to update room id=%d status: %v", booking.RoomID, err)
		return nil, fmt.Errorf("%w: CheckIn - failed to update room status: %v", ErrInternal, err)
	}

	booking.Status = domain.BookingStatusCheckedIn

	s.logger.Info("CheckIn: guest=%d checked in to room %s", booking.GuestID, booking.RoomNumber)
	return models.FromDomainBooking(booking), nil
}

// CheckOut выселяет гостя: checked_in -> checked_out, номер освобождается
func (s *Service) CheckOut(ctx context.Context, bookingID int64) (*models.BookingResponse, error) {
	s.logger.Info("CheckOut: booking id=%d", bookingID)

	booking, err := s.getBooking(ctx, bookingID, "CheckOut")
	if err != nil {
		return nil, err
	}

	if booking.Status != domain.BookingStatusCheckedIn {
		s.logger.Warn("CheckOut: booking id=%d has status=%s, expected checked_in", bookingID, booking.Status)
		return nil, ErrInvalidStatusTransition
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.BookingStatusCheckedOut); err != nil {
		s.logger.Error("CheckOut: failed to update booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: CheckOut - repository error: %v", ErrInternal, err)
	}

	if err := s.roomRepo.UpdateStatus(ctx, booking.RoomID, domain.RoomStatusAvailable); err != nil {
		s.logger.Error("CheckOut: failed to update room id=%d status: %v", booking.RoomID, err)
		return nil, fmt.Errorf("%w: CheckOut - failed to update room status: %v", ErrInternal, err)
	}

	booking.Status = domain.BookingStatusCheckedOut

	s.logger.Info("CheckOut: guest=%d checked out of room %s", booking.GuestID, booking.RoomNumber)
	return models.FromDomainBooking(booking), nil
}

// CalculateBill считает счёт за проживание: ночи * цена за ночь,
// выполненные запросы рум-сервиса по фиксированной цене и налог
func (s *Service) CalculateBill(ctx context.Context, bookingID int64, guestID int64) (*models.BillResponse, error) {
	s.logger.Info("CalculateBill: booking id=%d, guest=%d", bookingID, guestID)

	booking, err := s.getBooking(ctx, bookingID, "CalculateBill")
	if err != nil {
		return nil, err
	}

	if booking.GuestID != guestID {
		s.logger.Warn("CalculateBill: access denied for guest=%d to booking id=%d", guestID, bookingID)
		return nil, ErrAccessDenied
	}

	completed, err := s.roomServiceRepo.CountCompletedByBooking(ctx, bookingID)
	if err != nil {
		s.logger.Error("CalculateBill: failed to count room service requests: %v", err)
		return nil, fmt.Errorf("%w: CalculateBill - repository error: %v", ErrInternal, err)
	}

	nights := booking.Nights()
	roomCharge := domain.Round2(float64(nights) * booking.RoomPrice)
	serviceCharge := domain.Round2(float64(completed) * s.cfg.RoomServiceCharge)
	subtotal := domain.Round2(roomCharge + serviceCharge)
	tax := domain.Round2(subtotal * s.cfg.TaxRate)
	total := domain.Round2(subtotal + tax)

	return &models.BillResponse{
		BookingID:         booking.ID,
		RoomNumber:        booking.RoomNumber,
		Nights:            nights,
		RoomRate:          booking.RoomPrice,
		RoomCharge:        roomCharge,
		RoomServiceCount:  completed,
		RoomServiceCharge: serviceCharge,
		Subtotal:          subtotal,
		Tax:               tax,
		Total:             total,
	}, nil
}

// getBooking получает бронирование, маппя отсутствие на ErrBookingNotFound
func (s *Service) getBooking(ctx context.Context, id int64, op string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

// today полночь текущего дня в таймзоне отеля
func (s *Service) today() time.Time {
	now := s.timeProvider.Now().In(s.cfg.Location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.cfg.Location)
}
