package roomservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/booking"
	requestRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/roomservice"
	"github.com/m04kA/SMC-HotelService/internal/service/roomservice/models"
)

// Service сервис запросов рум-сервиса
type Service struct {
	requestRepo  RoomServiceRepository
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса рум-сервиса
func NewService(
	requestRepo RoomServiceRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *Service {
	return &Service{
		requestRepo:  requestRepo,
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Create создает запрос рум-сервиса
// Бронирование должно принадлежать гостю и быть активным (confirmed/checked_in)
func (s *Service) Create(ctx context.Context, req *models.CreateRequest) (*models.RequestResponse, error) {
	s.logger.Info("Create: guest=%d, booking=%d, service_type=%s", req.GuestID, req.BookingID, req.ServiceType)

	if req.ServiceType == "" {
		return nil, fmt.Errorf("%w: serviceType is required", ErrInvalidInput)
	}
	if len(req.Notes) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Create: booking id=%d not found", req.BookingID)
			return nil, ErrInvalidBooking
		}
		s.logger.Error("Create: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	if booking.GuestID != req.GuestID {
		s.logger.Warn("Create: booking id=%d does not belong to guest=%d", req.BookingID, req.GuestID)
		return nil, ErrInvalidBooking
	}

	if !booking.IsActive() {
		s.logger.Warn("Create: booking id=%d has status=%s", req.BookingID, booking.Status)
		return nil, ErrBookingNotActive
	}

	request := &domain.RoomServiceRequest{
		BookingID:   req.BookingID,
		ServiceType: req.ServiceType,
		Notes:       req.Notes,
		Status:      domain.RoomServiceStatusPending,
	}

	created, err := s.requestRepo.Create(ctx, request)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	created.GuestID = booking.GuestID
	created.RoomNumber = booking.RoomNumber

	s.logger.Info("Create: successfully created request id=%d", created.ID)
	return models.FromDomainRequest(created), nil
}

// GetGuestRequests получает запросы рум-сервиса гостя
func (s *Service) GetGuestRequests(ctx context.Context, guestID int64) (*models.RequestListResponse, error) {
	s.logger.Info("GetGuestRequests: guest=%d", guestID)

	requests, err := s.requestRepo.GetByGuestID(ctx, guestID)
	if err != nil {
		s.logger.Error("GetGuestRequests: repository error for guest=%d: %v", guestID, err)
		return nil, fmt.Errorf("%w: GetGuestRequests - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRequestList(requests), nil
}

// List получает запросы рум-сервиса, опционально по статусу
func (s *Service) List(ctx context.Context, status *string) (*models.RequestListResponse, error) {
	s.logger.Info("List: status=%v", status)

	var requestStatus *domain.RoomServiceStatus
	if status != nil {
		st := domain.RoomServiceStatus(*status)
		if !domain.IsValidRoomServiceStatus(st) {
			return nil, fmt.Errorf("%w: unknown request status %q", ErrInvalidInput, *status)
		}
		requestStatus = &st
	}

	requests, err := s.requestRepo.List(ctx, requestStatus)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRequestList(requests), nil
}

// Cancel отменяет запрос гостя, пока он не выполнен
func (s *Service) Cancel(ctx context.Context, id int64, guestID int64) error {
	s.logger.Info("Cancel: request id=%d by guest=%d", id, guestID)

	request, err := s.getRequest(ctx, id, "Cancel")
	if err != nil {
		return err
	}

	if request.GuestID != guestID {
		s.logger.Warn("Cancel: request id=%d does not belong to guest=%d", id, guestID)
		return ErrAccessDenied
	}

	if !request.CanBeCancelled() {
		s.logger.Warn("Cancel: request id=%d has status=%s", id, request.Status)
		return ErrNotCancellable
	}

	if err := s.requestRepo.UpdateStatus(ctx, id, domain.RoomServiceStatusCancelled, nil); err != nil {
		if errors.Is(err, requestRepo.ErrRequestNotFound) {
			return ErrRequestNotFound
		}
		s.logger.Error("Cancel: repository error for request id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled request id=%d", id)
	return nil
}

// UpdateStatus обновляет статус запроса (админка)
// Переход в completed фиксирует момент завершения
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (*models.RequestResponse, error) {
	s.logger.Info("UpdateStatus: request id=%d, status=%s", id, status)

	requestStatus := domain.RoomServiceStatus(status)
	if !domain.IsValidRoomServiceStatus(requestStatus) {
		return nil, fmt.Errorf("%w: unknown request status %q", ErrInvalidInput, status)
	}

	var completedAt *time.Time
	if requestStatus == domain.RoomServiceStatusCompleted {
		now := s.timeProvider.Now()
		completedAt = &now
	}

	if err := s.requestRepo.UpdateStatus(ctx, id, requestStatus, completedAt); err != nil {
		if errors.Is(err, requestRepo.ErrRequestNotFound) {
			s.logger.Warn("UpdateStatus: request id=%d not found", id)
			return nil, ErrRequestNotFound
		}
		s.logger.Error("UpdateStatus: repository error for request id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	request, err := s.getRequest(ctx, id, "UpdateStatus")
	if err != nil {
		return nil, err
	}

	return models.FromDomainRequest(request), nil
}

// getRequest получает запрос, маппя отсутствие на ErrRequestNotFound
func (s *Service) getRequest(ctx context.Context, id int64, op string) (*domain.RoomServiceRequest, error) {
	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, requestRepo.ErrRequestNotFound) {
			s.logger.Warn("%s: request id=%d not found", op, id)
			return nil, ErrRequestNotFound
		}
		s.logger.Error("%s: repository error for request id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return request, nil
}
