package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-HotelService/internal/service/bookings/models"
)

type fakeBookingRepo struct {
	bookings      map[int64]*domain.Booking
	statusUpdates map[int64]domain.BookingStatus
	cancelled     []int64
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{
		bookings:      make(map[int64]*domain.Booking),
		statusUpdates: make(map[int64]domain.BookingStatus),
	}
	for _, booking := range bookings {
		repo.bookings[booking.ID] = booking
	}
	return repo
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return booking, nil
}

func (f *fakeBookingRepo) GetByGuestID(_ context.Context, guestID int64, includeCancelled bool) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, booking := range f.bookings {
		if booking.GuestID != guestID {
			continue
		}
		if booking.IsCancelled() && !includeCancelled {
			continue
		}
		result = append(result, booking)
	}
	return result, nil
}

func (f *fakeBookingRepo) GetActiveByGuestID(_ context.Context, guestID int64, today time.Time) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, booking := range f.bookings {
		if booking.GuestID == guestID && booking.IsActive() && booking.CheckOut.After(today) {
			result = append(result, booking)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	f.statusUpdates[id] = status
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, _ time.Time) error {
	if _, ok := f.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.cancelled = append(f.cancelled, id)
	return nil
}

type fakeRoomRepo struct {
	statusUpdates map[int64]domain.RoomStatus
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{statusUpdates: make(map[int64]domain.RoomStatus)}
}

func (f *fakeRoomRepo) UpdateStatus(_ context.Context, id int64, status domain.RoomStatus) error {
	f.statusUpdates[id] = status
	return nil
}

type fakeRoomServiceRepo struct {
	completed int
}

func (f *fakeRoomServiceRepo) CountCompletedByBooking(_ context.Context, _ int64) (int, error) {
	return f.completed, nil
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

func testConfig() Config {
	return Config{
		CancellationNoticeHours: 24,
		TaxRate:                 0.10,
		RoomServiceCharge:       25.0,
		Location:                time.UTC,
	}
}

func newTestService(bookings *fakeBookingRepo, rooms *fakeRoomRepo, roomService *fakeRoomServiceRepo, now time.Time) *Service {
	svc := NewService(bookings, rooms, roomService, testConfig(), nopLogger{})
	svc.timeProvider = &fixedClock{now: now}
	return svc
}

func confirmedBooking() *domain.Booking {
	return &domain.Booking{
		ID:         1,
		GuestID:    7,
		RoomID:     3,
		RoomNumber: "101",
		RoomType:   domain.RoomTypeStandard,
		RoomPrice:  99.99,
		CheckIn:    day(2026, 7, 10),
		CheckOut:   day(2026, 7, 12),
		Status:     domain.BookingStatusConfirmed,
	}
}

func TestGetByIDOwnership(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking())
	svc := newTestService(repo, newFakeRoomRepo(), &fakeRoomServiceRepo{}, day(2026, 7, 1))

	resp, err := svc.GetByID(context.Background(), 1, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "2026-07-10", resp.CheckIn)

	_, err = svc.GetByID(context.Background(), 1, 8)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(context.Background(), 99, 7)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancelSuccess(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking())
	rooms := newFakeRoomRepo()
	// За 9 дней до заезда - запас достаточный
	svc := newTestService(repo, rooms, &fakeRoomServiceRepo{}, day(2026, 7, 1))

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{GuestID: 7})
	require.NoError(t, err)

	assert.Equal(t, []int64{1}, repo.cancelled)
	// Гость не был заселён - статус номера не трогаем
	assert.Empty(t, rooms.statusUpdates)
}

func TestCancelWithinWindow(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking())
	// До заезда меньше 24 часов
	svc := newTestService(repo, newFakeRoomRepo(), &fakeRoomServiceRepo{},
		time.Date(2026, 7, 9, 12, 0, 0, 0, time.UTC))

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{GuestID: 7})
	assert.ErrorIs(t, err, ErrWithinCancellationWindow)
	assert.Empty(t, repo.cancelled)
}

func TestCancelExactlyAtWindowBoundary(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking())
	// Ровно 24 часа до заезда - отмена ещё разрешена
	svc := newTestService(repo, newFakeRoomRepo(), &fakeRoomServiceRepo{},
		time.Date(2026, 7, 9, 0, 0, 0, 0, time.UTC))

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{GuestID: 7})
	require.NoError(t, err)
}

func TestCancelNotOwnedBookingHidden(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking())
	svc := newTestService(repo, newFakeRoomRepo(), &fakeRoomServiceRepo{}, day(2026, 7, 1))

	// Чужое бронирование неотличимо от несуществующего
	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{GuestID: 8})
	assert.ErrorIs(t, err, ErrInvalidBooking)

	err = svc.Cancel(context.Background(), 99, &models.CancelBookingRequest{GuestID: 7})
	assert.ErrorIs(t, err, ErrInvalidBooking)
}

func TestCancelFinishedBooking(t *testing.T) {
	booking := confirmedBooking()
	booking.Status = domain.BookingStatusCheckedOut
	repo := newFakeBookingRepo(booking)
	svc := newTestService(repo, newFakeRoomRepo(), &fakeRoomServiceRepo{}, day(2026, 7, 1))

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{GuestID: 7})
	assert.ErrorIs(t, err, ErrNotCancellable)
}

func TestCancelCheckedInRevertsRoom(t *testing.T) {
	booking := confirmedBooking()
	booking.Status = domain.BookingStatusCheckedIn
	booking.CheckIn = day(2026, 8, 1)
	booking.CheckOut = day(2026, 8, 5)
	repo := newFakeBookingRepo(booking)
	rooms := newFakeRoomRepo()
	svc := newTestService(repo, rooms, &fakeRoomServiceRepo{}, day(2026, 7, 1))

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{GuestID: 7})
	require.NoError(t, err)

	assert.Equal(t, domain.RoomStatusAvailable, rooms.statusUpdates[3])
}

func TestCheckInTransition(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking())
	rooms := newFakeRoomRepo()
	svc := newTestService(repo, rooms, &fakeRoomServiceRepo{}, day(2026, 7, 10))

	resp, err := svc.CheckIn(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, string(domain.BookingStatusCheckedIn), resp.Status)
	assert.Equal(t, domain.BookingStatusCheckedIn, repo.statusUpdates[1])
	assert.Equal(t, domain.RoomStatusOccupied, rooms.statusUpdates[3])

	// Повторный заезд невозможен
	booking := repo.bookings[1]
	booking.Status = domain.BookingStatusCheckedIn
	_, err = svc.CheckIn(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestCheckOutTransition(t *testing.T) {
	booking := confirmedBooking()
	booking.Status = domain.BookingStatusCheckedIn
	repo := newFakeBookingRepo(booking)
	rooms := newFakeRoomRepo()
	svc := newTestService(repo, rooms, &fakeRoomServiceRepo{}, day(2026, 7, 12))

	resp, err := svc.CheckOut(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, string(domain.BookingStatusCheckedOut), resp.Status)
	assert.Equal(t, domain.RoomStatusAvailable, rooms.statusUpdates[3])
}

func TestCheckOutRequiresCheckedIn(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking())
	svc := newTestService(repo, newFakeRoomRepo(), &fakeRoomServiceRepo{}, day(2026, 7, 10))

	_, err := svc.CheckOut(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestCalculateBill(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking())
	svc := newTestService(repo, newFakeRoomRepo(), &fakeRoomServiceRepo{completed: 2}, day(2026, 7, 12))

	bill, err := svc.CalculateBill(context.Background(), 1, 7)
	require.NoError(t, err)

	// 2 ночи * 99.99 + 2 запроса * 25.00, налог 10%
	assert.Equal(t, 2, bill.Nights)
	assert.Equal(t, 199.98, bill.RoomCharge)
	assert.Equal(t, 2, bill.RoomServiceCount)
	assert.Equal(t, 50.0, bill.RoomServiceCharge)
	assert.Equal(t, 249.98, bill.Subtotal)
	assert.Equal(t, 25.0, bill.Tax)
	assert.Equal(t, 274.98, bill.Total)
}

func TestCalculateBillAccessDenied(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking())
	svc := newTestService(repo, newFakeRoomRepo(), &fakeRoomServiceRepo{}, day(2026, 7, 12))

	_, err := svc.CalculateBill(context.Background(), 1, 8)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetActiveBookingsFiltersFinished(t *testing.T) {
	active := confirmedBooking()
	past := confirmedBooking()
	past.ID = 2
	past.CheckIn = day(2026, 6, 1)
	past.CheckOut = day(2026, 6, 5)
	past.Status = domain.BookingStatusCheckedOut
	repo := newFakeBookingRepo(active, past)
	svc := newTestService(repo, newFakeRoomRepo(), &fakeRoomServiceRepo{}, day(2026, 7, 1))

	resp, err := svc.GetActiveBookings(context.Background(), 7)
	require.NoError(t, err)

	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(1), resp.Bookings[0].ID)
}
