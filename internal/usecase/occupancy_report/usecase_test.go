package occupancy_report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetIntersectingWindow(_ context.Context, _, _ time.Time) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeRoomRepo struct {
	total int
}

func (f *fakeRoomRepo) CountAll(_ context.Context) (int, error) {
	return f.total, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExecuteBuildsDayTable(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{{
		ID:       1,
		RoomID:   1,
		CheckIn:  day(2026, 7, 1),
		CheckOut: day(2026, 7, 3),
		Status:   domain.BookingStatusConfirmed,
	}}}
	uc := NewUseCase(bookings, &fakeRoomRepo{total: 3}, &fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		StartDate: day(2026, 7, 1),
		EndDate:   day(2026, 7, 3),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.TotalRooms)
	assert.Equal(t, 1, resp.Bookings)
	require.Len(t, resp.Days, 3)

	// Ночи 1 и 2 июля заняты, день выезда свободен
	assert.Equal(t, 1, resp.Days[0].Occupied)
	assert.Equal(t, 33.33, resp.Days[0].Rate)
	assert.Equal(t, 1, resp.Days[1].Occupied)
	assert.Equal(t, 0, resp.Days[2].Occupied)
	assert.Equal(t, 0.0, resp.Days[2].Rate)

	assert.Equal(t, 22.22, resp.AverageRate)
}

func TestExecuteEmptyCatalog(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeRoomRepo{total: 0}, &fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		StartDate: day(2026, 7, 1),
		EndDate:   day(2026, 7, 2),
	})
	require.NoError(t, err)

	require.Len(t, resp.Days, 2)
	assert.Equal(t, 0.0, resp.Days[0].Rate)
	assert.Equal(t, 0.0, resp.AverageRate)
}

func TestExecuteSingleDayWindow(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeRoomRepo{total: 5}, &fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		StartDate: day(2026, 7, 1),
		EndDate:   day(2026, 7, 1),
	})
	require.NoError(t, err)
	require.Len(t, resp.Days, 1)
}

func TestExecuteInvalidWindow(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeRoomRepo{total: 5}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		StartDate: day(2026, 7, 10),
		EndDate:   day(2026, 7, 1),
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestExecuteWindowTooLarge(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeRoomRepo{total: 5}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		StartDate: day(2026, 1, 1),
		EndDate:   day(2028, 1, 1),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
