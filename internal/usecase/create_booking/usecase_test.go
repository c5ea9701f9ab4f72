package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelService/internal/integrations/guestservice"
)

type fakeRoomRepo struct {
	room          *domain.Room
	statusUpdates []domain.RoomStatus
}

func (f *fakeRoomRepo) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	if f.room == nil || f.room.ID != id {
		return nil, roomRepo.ErrRoomNotFound
	}
	return f.room, nil
}

func (f *fakeRoomRepo) UpdateStatus(_ context.Context, _ int64, status domain.RoomStatus) error {
	f.statusUpdates = append(f.statusUpdates, status)
	return nil
}

type fakeBookingRepo struct {
	existing []*domain.Booking
	created  *domain.Booking
	nextID   int64
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	created := *booking
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.created = &created
	return &created, nil
}

func (f *fakeBookingRepo) GetOverlappingForRoom(_ context.Context, _ int64, _, _ time.Time) ([]*domain.Booking, error) {
	return f.existing, nil
}

type fakeGuestClient struct {
	guests map[int64]*guestservice.Guest
}

func (f *fakeGuestClient) GetGuest(_ context.Context, guestID int64) (*guestservice.Guest, error) {
	guest, ok := f.guests[guestID]
	if !ok {
		return nil, guestservice.ErrGuestNotFound
	}
	return guest, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestUseCase(rooms *fakeRoomRepo, bookings *fakeBookingRepo, now time.Time) *UseCase {
	uc := NewUseCase(
		rooms,
		bookings,
		&fakeGuestClient{guests: map[int64]*guestservice.Guest{
			7: {ID: 7, Name: "Ivan", Email: "ivan@example.com"},
		}},
		&fakeTxManager{},
		time.UTC,
		nopLogger{},
	)
	uc.timeProvider = &fixedClock{now: now}
	return uc
}

func TestExecuteSuccess(t *testing.T) {
	rooms := &fakeRoomRepo{room: &domain.Room{
		ID:         1,
		RoomNumber: "101",
		Type:       domain.RoomTypeStandard,
		Price:      99.99,
		Capacity:   2,
		Status:     domain.RoomStatusAvailable,
	}}
	bookings := &fakeBookingRepo{nextID: 42}
	uc := newTestUseCase(rooms, bookings, day(2026, 7, 1))

	resp, err := uc.Execute(context.Background(), &Request{
		GuestID:  7,
		RoomID:   1,
		CheckIn:  day(2026, 7, 10),
		CheckOut: day(2026, 7, 12),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, string(domain.BookingStatusConfirmed), resp.Status)
	assert.Equal(t, 2, resp.Nights)
	assert.Equal(t, "101", resp.RoomNumber)
	assert.Equal(t, 199.98, resp.TotalPrice)
	// Заезд не сегодня - статус номера не трогаем
	assert.Empty(t, rooms.statusUpdates)
}

func TestExecuteSameDayCheckInMarksRoomOccupied(t *testing.T) {
	rooms := &fakeRoomRepo{room: &domain.Room{ID: 1, RoomNumber: "101", Price: 50}}
	bookings := &fakeBookingRepo{nextID: 1}
	uc := newTestUseCase(rooms, bookings, day(2026, 7, 10))

	_, err := uc.Execute(context.Background(), &Request{
		GuestID:  7,
		RoomID:   1,
		CheckIn:  day(2026, 7, 10),
		CheckOut: day(2026, 7, 12),
	})
	require.NoError(t, err)

	require.Len(t, rooms.statusUpdates, 1)
	assert.Equal(t, domain.RoomStatusOccupied, rooms.statusUpdates[0])
}

func TestExecuteInvalidDateRange(t *testing.T) {
	uc := newTestUseCase(&fakeRoomRepo{}, &fakeBookingRepo{}, day(2026, 7, 1))

	_, err := uc.Execute(context.Background(), &Request{
		GuestID:  7,
		RoomID:   1,
		CheckIn:  day(2026, 7, 12),
		CheckOut: day(2026, 7, 10),
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	// Нулевая длительность тоже не проходит
	_, err = uc.Execute(context.Background(), &Request{
		GuestID:  7,
		RoomID:   1,
		CheckIn:  day(2026, 7, 10),
		CheckOut: day(2026, 7, 10),
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestExecutePastCheckIn(t *testing.T) {
	uc := newTestUseCase(&fakeRoomRepo{}, &fakeBookingRepo{}, day(2026, 7, 10))

	_, err := uc.Execute(context.Background(), &Request{
		GuestID:  7,
		RoomID:   1,
		CheckIn:  day(2026, 7, 9),
		CheckOut: day(2026, 7, 12),
	})
	assert.ErrorIs(t, err, ErrPastCheckIn)
}

func TestExecuteGuestNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeRoomRepo{}, &fakeBookingRepo{}, day(2026, 7, 1))

	_, err := uc.Execute(context.Background(), &Request{
		GuestID:  999,
		RoomID:   1,
		CheckIn:  day(2026, 7, 10),
		CheckOut: day(2026, 7, 12),
	})
	assert.ErrorIs(t, err, ErrGuestNotFound)
}

func TestExecuteRoomNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeRoomRepo{}, &fakeBookingRepo{}, day(2026, 7, 1))

	_, err := uc.Execute(context.Background(), &Request{
		GuestID:  7,
		RoomID:   1,
		CheckIn:  day(2026, 7, 10),
		CheckOut: day(2026, 7, 12),
	})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecuteRoomUnavailableOnOverlap(t *testing.T) {
	rooms := &fakeRoomRepo{room: &domain.Room{ID: 1, RoomNumber: "101", Price: 50}}
	bookings := &fakeBookingRepo{
		existing: []*domain.Booking{{
			ID:       5,
			RoomID:   1,
			CheckIn:  day(2026, 7, 11),
			CheckOut: day(2026, 7, 14),
			Status:   domain.BookingStatusConfirmed,
		}},
	}
	uc := newTestUseCase(rooms, bookings, day(2026, 7, 1))

	_, err := uc.Execute(context.Background(), &Request{
		GuestID:  7,
		RoomID:   1,
		CheckIn:  day(2026, 7, 10),
		CheckOut: day(2026, 7, 12),
	})
	assert.ErrorIs(t, err, ErrRoomUnavailable)
	assert.Nil(t, bookings.created)
}

func TestExecuteBackToBackAllowed(t *testing.T) {
	rooms := &fakeRoomRepo{room: &domain.Room{ID: 1, RoomNumber: "101", Price: 50}}
	bookings := &fakeBookingRepo{
		nextID: 2,
		existing: []*domain.Booking{{
			ID:       1,
			RoomID:   1,
			CheckIn:  day(2026, 7, 8),
			CheckOut: day(2026, 7, 10),
			Status:   domain.BookingStatusConfirmed,
		}},
	}
	uc := newTestUseCase(rooms, bookings, day(2026, 7, 1))

	// Заезд в день выезда предыдущего гостя - номер свободен
	resp, err := uc.Execute(context.Background(), &Request{
		GuestID:  7,
		RoomID:   1,
		CheckIn:  day(2026, 7, 10),
		CheckOut: day(2026, 7, 12),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.ID)
}

func TestExecuteCancelledBookingDoesNotBlock(t *testing.T) {
	rooms := &fakeRoomRepo{room: &domain.Room{ID: 1, RoomNumber: "101", Price: 50}}
	bookings := &fakeBookingRepo{
		nextID: 2,
		existing: []*domain.Booking{{
			ID:       1,
			RoomID:   1,
			CheckIn:  day(2026, 7, 10),
			CheckOut: day(2026, 7, 12),
			Status:   domain.BookingStatusCancelled,
		}},
	}
	uc := newTestUseCase(rooms, bookings, day(2026, 7, 1))

	_, err := uc.Execute(context.Background(), &Request{
		GuestID:  7,
		RoomID:   1,
		CheckIn:  day(2026, 7, 10),
		CheckOut: day(2026, 7, 12),
	})
	require.NoError(t, err)
}
