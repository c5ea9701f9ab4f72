package rooms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelService/internal/service/rooms/models"
)

type fakeRoomRepo struct {
	rooms  map[int64]*domain.Room
	nextID int64
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: make(map[int64]*domain.Room), nextID: 1}
}

func (f *fakeRoomRepo) Create(_ context.Context, room *domain.Room) (*domain.Room, error) {
	for _, existing := range f.rooms {
		if existing.RoomNumber == room.RoomNumber {
			return nil, roomRepo.ErrRoomNumberTaken
		}
	}
	created := *room
	created.ID = f.nextID
	f.nextID++
	f.rooms[created.ID] = &created
	return &created, nil
}

func (f *fakeRoomRepo) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	room, ok := f.rooms[id]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	return room, nil
}

func (f *fakeRoomRepo) List(_ context.Context, filter domain.RoomsFilter) ([]*domain.Room, error) {
	var result []*domain.Room
	for _, room := range f.rooms {
		if filter.Status != nil && room.Status != *filter.Status {
			continue
		}
		if filter.Type != nil && room.Type != *filter.Type {
			continue
		}
		result = append(result, room)
	}
	return result, nil
}

func (f *fakeRoomRepo) Update(_ context.Context, id int64, upd domain.RoomUpdate) error {
	room, ok := f.rooms[id]
	if !ok {
		return roomRepo.ErrRoomNotFound
	}
	if upd.Type != nil {
		room.Type = *upd.Type
	}
	if upd.Price != nil {
		room.Price = *upd.Price
	}
	if upd.Capacity != nil {
		room.Capacity = *upd.Capacity
	}
	if upd.Status != nil {
		room.Status = *upd.Status
	}
	return nil
}

func (f *fakeRoomRepo) UpdateStatus(_ context.Context, id int64, status domain.RoomStatus) error {
	room, ok := f.rooms[id]
	if !ok {
		return roomRepo.ErrRoomNotFound
	}
	room.Status = status
	return nil
}

func (f *fakeRoomRepo) CountAll(_ context.Context) (int, error) {
	return len(f.rooms), nil
}

func (f *fakeRoomRepo) CountByStatus(_ context.Context, status domain.RoomStatus) (int, error) {
	count := 0
	for _, room := range f.rooms {
		if room.Status == status {
			count++
		}
	}
	return count, nil
}

type fakeBookingRepo struct {
	active int
}

func (f *fakeBookingRepo) CountActive(_ context.Context) (int, error) {
	return f.active, nil
}

type fakeEmployeeRepo struct {
	total int
}

func (f *fakeEmployeeRepo) CountAll(_ context.Context) (int, error) {
	return f.total, nil
}

type fakeInventoryRepo struct {
	lowStock      int
	pendingOrders int
}

func (f *fakeInventoryRepo) CountLowStock(_ context.Context) (int, error) {
	return f.lowStock, nil
}

func (f *fakeInventoryRepo) CountOrdersByStatus(_ context.Context, _ domain.OrderStatus) (int, error) {
	return f.pendingOrders, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(rooms *fakeRoomRepo) *Service {
	return NewService(rooms, &fakeBookingRepo{}, &fakeEmployeeRepo{}, &fakeInventoryRepo{}, nopLogger{})
}

func validCreateRequest() *models.CreateRoomRequest {
	return &models.CreateRoomRequest{
		RoomNumber: "101",
		Type:       "standard",
		Price:      99.99,
		Capacity:   2,
	}
}

func TestCreateRoom(t *testing.T) {
	repo := newFakeRoomRepo()
	svc := newTestService(repo)

	resp, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, "101", resp.RoomNumber)
	// Новый номер сразу доступен
	assert.Equal(t, string(domain.RoomStatusAvailable), resp.Status)
}

func TestCreateRoomNumberTaken(t *testing.T) {
	repo := newFakeRoomRepo()
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, ErrRoomNumberTaken)
}

func TestCreateRoomValidation(t *testing.T) {
	svc := newTestService(newFakeRoomRepo())

	tests := []struct {
		name   string
		mutate func(*models.CreateRoomRequest)
	}{
		{"пустой номер", func(r *models.CreateRoomRequest) { r.RoomNumber = "" }},
		{"неизвестный тип", func(r *models.CreateRoomRequest) { r.Type = "penthouse" }},
		{"нулевая цена", func(r *models.CreateRoomRequest) { r.Price = 0 }},
		{"нулевая вместимость", func(r *models.CreateRoomRequest) { r.Capacity = 0 }},
		{"вместимость сверх предела", func(r *models.CreateRoomRequest) { r.Capacity = domain.MaxRoomCapacity + 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(req)
			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdateRoom(t *testing.T) {
	repo := newFakeRoomRepo()
	svc := newTestService(repo)

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	price := 120.0
	resp, err := svc.Update(context.Background(), created.ID, &models.UpdateRoomRequest{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 120.0, resp.Price)
	assert.Equal(t, "standard", resp.Type)

	badPrice := -1.0
	_, err = svc.Update(context.Background(), created.ID, &models.UpdateRoomRequest{Price: &badPrice})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Update(context.Background(), 99, &models.UpdateRoomRequest{Price: &price})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestUpdateStatus(t *testing.T) {
	repo := newFakeRoomRepo()
	svc := newTestService(repo)

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(context.Background(), created.ID, "occupied"))
	assert.Equal(t, domain.RoomStatusOccupied, repo.rooms[created.ID].Status)

	err = svc.UpdateStatus(context.Background(), created.ID, "busy")
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = svc.UpdateStatus(context.Background(), 99, "available")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestListRoomsFilterValidation(t *testing.T) {
	svc := newTestService(newFakeRoomRepo())

	badStatus := "busy"
	_, err := svc.List(context.Background(), &models.ListRoomsRequest{Status: &badStatus})
	assert.ErrorIs(t, err, ErrInvalidInput)

	badType := "penthouse"
	_, err = svc.List(context.Background(), &models.ListRoomsRequest{Type: &badType})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDashboardStats(t *testing.T) {
	repo := newFakeRoomRepo()
	svc := NewService(repo, &fakeBookingRepo{active: 4}, &fakeEmployeeRepo{total: 6},
		&fakeInventoryRepo{lowStock: 2, pendingOrders: 1}, nopLogger{})

	for _, number := range []string{"101", "102", "103"} {
		req := validCreateRequest()
		req.RoomNumber = number
		_, err := svc.Create(context.Background(), req)
		require.NoError(t, err)
	}
	require.NoError(t, svc.UpdateStatus(context.Background(), 1, "occupied"))

	stats, err := svc.DashboardStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalRooms)
	assert.Equal(t, 1, stats.OccupiedRooms)
	assert.Equal(t, 33.33, stats.OccupancyRate)
	assert.Equal(t, 4, stats.ActiveBookings)
	assert.Equal(t, 6, stats.Employees)
	assert.Equal(t, 2, stats.LowStockItems)
	assert.Equal(t, 1, stats.PendingOrders)
}
