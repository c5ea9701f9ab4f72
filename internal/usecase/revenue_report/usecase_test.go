package revenue_report

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

func TestExecuteSumsRevenue(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{
			ID: 1, GuestID: 7, RoomNumber: "101", RoomType: domain.RoomTypeStandard, RoomPrice: 99.99,
			CheckIn: day(2026, 7, 10), CheckOut: day(2026, 7, 12),
			Status: domain.BookingStatusConfirmed,
		},
		{
			ID: 2, GuestID: 8, RoomNumber: "201", RoomType: domain.RoomTypeDeluxe, RoomPrice: 150,
			CheckIn: day(2026, 7, 15), CheckOut: day(2026, 7, 18),
			Status: domain.BookingStatusCheckedOut,
		},
	}}
	uc := NewUseCase(repo, &fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		StartDate: day(2026, 7, 1),
		EndDate:   day(2026, 7, 31),
	})
	require.NoError(t, err)

	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, 2, resp.Bookings[0].Nights)
	assert.Equal(t, 199.98, resp.Bookings[0].Amount)
	assert.Equal(t, 3, resp.Bookings[1].Nights)
	assert.Equal(t, 450.0, resp.Bookings[1].Amount)

	assert.Equal(t, 649.98, resp.TotalRevenue)
	assert.Equal(t, 199.98, resp.ByRoomType["standard"])
	assert.Equal(t, 450.0, resp.ByRoomType["deluxe"])
}

func TestExecuteClipsNightsToWindow(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{{
		ID: 1, RoomNumber: "101", RoomType: domain.RoomTypeStandard, RoomPrice: 100,
		CheckIn: day(2026, 6, 28), CheckOut: day(2026, 7, 3),
		Status: domain.BookingStatusConfirmed,
	}}}
	uc := NewUseCase(repo, &fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		StartDate: day(2026, 7, 1),
		EndDate:   day(2026, 7, 31),
	})
	require.NoError(t, err)

	// Оплачиваются только ночи 1 и 2 июля
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, 2, resp.Bookings[0].Nights)
	assert.Equal(t, 200.0, resp.TotalRevenue)
}

func TestExecuteBoundaryBookingYieldsZero(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{{
		ID: 1, RoomNumber: "101", RoomType: domain.RoomTypeStandard, RoomPrice: 100,
		CheckIn: day(2026, 6, 28), CheckOut: day(2026, 7, 1),
		Status: domain.BookingStatusConfirmed,
	}}}
	uc := NewUseCase(repo, &fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		StartDate: day(2026, 7, 1),
		EndDate:   day(2026, 7, 31),
	})
	require.NoError(t, err)

	// Выезд в первый день окна: бронирование учтено, но ночей нет
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, 0, resp.Bookings[0].Nights)
	assert.Equal(t, 0.0, resp.Bookings[0].Amount)
	assert.Equal(t, 0.0, resp.TotalRevenue)
}

func TestExecuteInvalidWindow(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		StartDate: day(2026, 7, 31),
		EndDate:   day(2026, 7, 1),
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}
