package rooms

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelService/internal/service/rooms/models"
)

// Service сервис каталога номеров
type Service struct {
	roomRepo      RoomRepository
	bookingRepo   BookingRepository
	employeeRepo  EmployeeRepository
	inventoryRepo InventoryRepository
	logger        Logger
}

// NewService создает новый экземпляр сервиса каталога номеров
func NewService(
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	employeeRepo EmployeeRepository,
	inventoryRepo InventoryRepository,
	logger Logger,
) *Service {
	return &Service{
		roomRepo:      roomRepo,
		bookingRepo:   bookingRepo,
		employeeRepo:  employeeRepo,
		inventoryRepo: inventoryRepo,
		logger:        logger,
	}
}

// List получает номера каталога с опциональной фильтрацией
func (s *Service) List(ctx context.Context, req *models.ListRoomsRequest) (*models.RoomListResponse, error) {
	s.logger.Info("List: fetching rooms, status=%v, type=%v", req.Status, req.Type)

	filter := domain.RoomsFilter{}

	if req.Status != nil {
		status := domain.RoomStatus(*req.Status)
		if !domain.IsValidRoomStatus(status) {
			return nil, fmt.Errorf("%w: unknown room status %q", ErrInvalidInput, *req.Status)
		}
		filter.Status = &status
	}
	if req.Type != nil {
		roomType := domain.RoomType(*req.Type)
		if !domain.IsValidRoomType(roomType) {
			return nil, fmt.Errorf("%w: unknown room type %q", ErrInvalidInput, *req.Type)
		}
		filter.Type = &roomType
	}

	rooms, err := s.roomRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoomList(rooms), nil
}

// GetByID получает номер по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.RoomResponse, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("GetByID: room id=%d not found", id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetByID: repository error for room id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoom(room), nil
}

// Create добавляет номер в каталог
func (s *Service) Create(ctx context.Context, req *models.CreateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("Create: room_number=%s, type=%s, price=%.2f", req.RoomNumber, req.Type, req.Price)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	room := &domain.Room{
		RoomNumber: req.RoomNumber,
		Type:       domain.RoomType(req.Type),
		Price:      req.Price,
		Capacity:   req.Capacity,
		Status:     domain.RoomStatusAvailable,
	}

	created, err := s.roomRepo.Create(ctx, room)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNumberTaken) {
			s.logger.Warn("Create: room_number=%s already taken", req.RoomNumber)
			return nil, ErrRoomNumberTaken
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created room id=%d", created.ID)
	return models.FromDomainRoom(created), nil
}

// Update частично обновляет атрибуты номера
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("Update: room id=%d", id)

	upd, err := toDomainUpdate(req)
	if err != nil {
		s.logger.Warn("Update: validation failed for room id=%d: %v", id, err)
		return nil, err
	}

	if err := s.roomRepo.Update(ctx, id, upd); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("Update: room id=%d not found", id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("Update: repository error for room id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	return s.GetByID(ctx, id)
}

// UpdateStatus обновляет кэшированный статус номера
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) error {
	roomStatus := domain.RoomStatus(status)
	if !domain.IsValidRoomStatus(roomStatus) {
		return fmt.Errorf("%w: unknown room status %q", ErrInvalidInput, status)
	}

	if err := s.roomRepo.UpdateStatus(ctx, id, roomStatus); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("UpdateStatus: room id=%d not found", id)
			return ErrRoomNotFound
		}
		s.logger.Error("UpdateStatus: repository error for room id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	return nil
}

// DashboardStats собирает сводку для дашборда админки
func (s *Service) DashboardStats(ctx context.Context) (*models.DashboardStatsResponse, error) {
	s.logger.Info("DashboardStats: collecting stats")

	totalRooms, err := s.roomRepo.CountAll(ctx)
	if err != nil {
		s.logger.Error("DashboardStats: failed to count rooms: %v", err)
		return nil, fmt.Errorf("%w: DashboardStats - repository error: %v", ErrInternal, err)
	}

	occupiedRooms, err := s.roomRepo.CountByStatus(ctx, domain.RoomStatusOccupied)
	if err != nil {
		s.logger.Error("DashboardStats: failed to count occupied rooms: %v", err)
		return nil, fmt.Errorf("%w: DashboardStats - repository error: %v", ErrInternal, err)
	}

	activeBookings, err := s.bookingRepo.CountActive(ctx)
	if err != nil {
		s.logger.Error("DashboardStats: failed to count bookings: %v", err)
		return nil, fmt.Errorf("%w: DashboardStats - repository error: %v", ErrInternal, err)
	}

	employees, err := s.employeeRepo.CountAll(ctx)
	if err != nil {
		s.logger.Error("DashboardStats: failed to count employees: %v", err)
		return nil, fmt.Errorf("%w: DashboardStats - repository error: %v", ErrInternal, err)
	}

	lowStock, err := s.inventoryRepo.CountLowStock(ctx)
	if err != nil {
		s.logger.Error("DashboardStats: failed to count low stock items: %v", err)
		return nil, fmt.Errorf("%w: DashboardStats - repository error: %v", ErrInternal, err)
	}

	pendingOrders, err := s.inventoryRepo.CountOrdersByStatus(ctx, domain.OrderStatusPending)
	if err != nil {
		s.logger.Error("DashboardStats: failed to count pending orders: %v", err)
		return nil, fmt.Errorf("%w: DashboardStats - repository error: %v", ErrInternal, err)
	}

	occupancy := domain.DayOccupancy{Occupied: occupiedRooms, TotalRooms: totalRooms}

	return &models.DashboardStatsResponse{
		TotalRooms:     totalRooms,
		OccupiedRooms:  occupiedRooms,
		OccupancyRate:  occupancy.Rate(),
		ActiveBookings: activeBookings,
		Employees:      employees,
		LowStockItems:  lowStock,
		PendingOrders:  pendingOrders,
	}, nil
}

// validateCreateRequest проверяет запрос на добавление номера
func validateCreateRequest(req *models.CreateRoomRequest) error {
	if req.RoomNumber == "" {
		return fmt.Errorf("%w: roomNumber is required", ErrInvalidInput)
	}
	if !domain.IsValidRoomType(domain.RoomType(req.Type)) {
		return fmt.Errorf("%w: unknown room type %q", ErrInvalidInput, req.Type)
	}
	if req.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}
	if req.Capacity < domain.MinRoomCapacity || req.Capacity > domain.MaxRoomCapacity {
		return fmt.Errorf("%w: capacity must be between %d and %d",
			ErrInvalidInput, domain.MinRoomCapacity, domain.MaxRoomCapacity)
	}
	return nil
}

// toDomainUpdate валидирует и конвертирует частичное обновление
func toDomainUpdate(req *models.UpdateRoomRequest) (domain.RoomUpdate, error) {
	var upd domain.RoomUpdate

	if req.Type != nil {
		roomType := domain.RoomType(*req.Type)
		if !domain.IsValidRoomType(roomType) {
			return upd, fmt.Errorf("%w: unknown room type %q", ErrInvalidInput, *req.Type)
		}
		upd.Type = &roomType
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return upd, fmt.Errorf("%w: price must be positive", ErrInvalidInput)
		}
		upd.Price = req.Price
	}
	if req.Capacity != nil {
		if *req.Capacity < domain.MinRoomCapacity || *req.Capacity > domain.MaxRoomCapacity {
			return upd, fmt.Errorf("%w: capacity must be between %d and %d",
				ErrInvalidInput, domain.MinRoomCapacity, domain.MaxRoomCapacity)
		}
		upd.Capacity = req.Capacity
	}
	if req.Status != nil {
		status := domain.RoomStatus(*req.Status)
		if !domain.IsValidRoomStatus(status) {
			return upd, fmt.Errorf("%w: unknown room status %q", ErrInvalidInput, *req.Status)
		}
		upd.Status = &status
	}

	return upd, nil
}
