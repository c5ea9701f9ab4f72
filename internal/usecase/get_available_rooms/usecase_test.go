package get_available_rooms

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

type fakeRoomRepo struct {
	rooms       []*domain.Room
	gotType     *domain.RoomType
	gotCheckIn  time.Time
	gotCheckOut time.Time
	calls       int
}

func (f *fakeRoomRepo) ListAvailable(_ context.Context, checkIn, checkOut time.Time, roomType *domain.RoomType) ([]*domain.Room, error) {
	f.calls++
	f.gotCheckIn = checkIn
	f.gotCheckOut = checkOut
	f.gotType = roomType
	return f.rooms, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExecuteReturnsRoomsWithTotalPrice(t *testing.T) {
	repo := &fakeRoomRepo{rooms: []*domain.Room{
		{ID: 1, RoomNumber: "101", Type: domain.RoomTypeStandard, Price: 99.99, Capacity: 2},
		{ID: 2, RoomNumber: "201", Type: domain.RoomTypeDeluxe, Price: 150, Capacity: 3},
	}}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		CheckIn:  day(2026, 7, 10),
		CheckOut: day(2026, 7, 13),
	})
	require.NoError(t, err)

	require.Len(t, resp.Rooms, 2)
	// Три ночи по 99.99
	assert.Equal(t, 299.97, resp.Rooms[0].TotalPrice)
	assert.Equal(t, 450.0, resp.Rooms[1].TotalPrice)
	assert.Nil(t, repo.gotType)
}

func TestExecutePassesRoomTypeFilter(t *testing.T) {
	repo := &fakeRoomRepo{}
	uc := NewUseCase(repo, nopLogger{})

	roomType := "suite"
	_, err := uc.Execute(context.Background(), &Request{
		CheckIn:  day(2026, 7, 10),
		CheckOut: day(2026, 7, 11),
		RoomType: &roomType,
	})
	require.NoError(t, err)

	require.NotNil(t, repo.gotType)
	assert.Equal(t, domain.RoomTypeSuite, *repo.gotType)
}

func TestExecuteInvalidDateRange(t *testing.T) {
	repo := &fakeRoomRepo{}
	uc := NewUseCase(repo, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		CheckIn:  day(2026, 7, 13),
		CheckOut: day(2026, 7, 10),
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = uc.Execute(context.Background(), &Request{
		CheckIn:  day(2026, 7, 10),
		CheckOut: day(2026, 7, 10),
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)
	assert.Zero(t, repo.calls)
}

func TestExecuteUnknownRoomType(t *testing.T) {
	uc := NewUseCase(&fakeRoomRepo{}, nopLogger{})

	roomType := "penthouse"
	_, err := uc.Execute(context.Background(), &Request{
		CheckIn:  day(2026, 7, 10),
		CheckOut: day(2026, 7, 11),
		RoomType: &roomType,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
