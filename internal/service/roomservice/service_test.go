package roomservice

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/booking"
	requestRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/roomservice"
	"github.com/m04kA/SMC-HotelService/internal/service/roomservice/models"
)

type fakeRequestRepo struct {
	requests map[int64]*domain.RoomServiceRequest
	nextID   int64
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[int64]*domain.RoomServiceRequest), nextID: 1}
}

func (f *fakeRequestRepo) Create(_ context.Context, request *domain.RoomServiceRequest) (*domain.RoomServiceRequest, error) {
	created := *request
	created.ID = f.nextID
	created.RequestedAt = time.Now()
	f.nextID++
	f.requests[created.ID] = &created
	return &created, nil
}

func (f *fakeRequestRepo) GetByID(_ context.Context, id int64) (*domain.RoomServiceRequest, error) {
	request, ok := f.requests[id]
	if !ok {
		return nil, requestRepo.ErrRequestNotFound
	}
	return request, nil
}

func (f *fakeRequestRepo) GetByGuestID(_ context.Context, guestID int64) ([]*domain.RoomServiceRequest, error) {
	var result []*domain.RoomServiceRequest
	for _, request := range f.requests {
		if request.GuestID == guestID {
			result = append(result, request)
		}
	}
	return result, nil
}

func (f *fakeRequestRepo) List(_ context.Context, status *domain.RoomServiceStatus) ([]*domain.RoomServiceRequest, error) {
	var result []*domain.RoomServiceRequest
	for _, request := range f.requests {
		if status != nil && request.Status != *status {
			continue
		}
		result = append(result, request)
	}
	return result, nil
}

func (f *fakeRequestRepo) UpdateStatus(_ context.Context, id int64, status domain.RoomServiceStatus, completedAt *time.Time) error {
	request, ok := f.requests[id]
	if !ok {
		return requestRepo.ErrRequestNotFound
	}
	request.Status = status
	request.CompletedAt = completedAt
	return nil
}

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return booking, nil
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

func activeBooking() *domain.Booking {
	return &domain.Booking{
		ID:         1,
		GuestID:    7,
		RoomID:     3,
		RoomNumber: "101",
		Status:     domain.BookingStatusCheckedIn,
	}
}

func newTestService(requests *fakeRequestRepo, booking *domain.Booking, now time.Time) *Service {
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{}}
	if booking != nil {
		bookings.bookings[booking.ID] = booking
	}
	svc := NewService(requests, bookings, nopLogger{})
	svc.timeProvider = &fixedClock{now: now}
	return svc
}

func TestCreateRequest(t *testing.T) {
	requests := newFakeRequestRepo()
	svc := newTestService(requests, activeBooking(), time.Now())

	resp, err := svc.Create(context.Background(), &models.CreateRequest{
		GuestID:     7,
		BookingID:   1,
		ServiceType: "cleaning",
		Notes:       "extra towels",
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.RoomServiceStatusPending), resp.Status)
	assert.Equal(t, "101", resp.RoomNumber)
	assert.Equal(t, int64(7), resp.GuestID)
}

func TestCreateRequestValidation(t *testing.T) {
	svc := newTestService(newFakeRequestRepo(), activeBooking(), time.Now())

	_, err := svc.Create(context.Background(), &models.CreateRequest{
		GuestID:   7,
		BookingID: 1,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), &models.CreateRequest{
		GuestID:     7,
		BookingID:   1,
		ServiceType: "cleaning",
		Notes:       strings.Repeat("x", domain.MaxNotesLength+1),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateRequestBookingGates(t *testing.T) {
	svc := newTestService(newFakeRequestRepo(), activeBooking(), time.Now())

	// Чужое бронирование неотличимо от несуществующего
	_, err := svc.Create(context.Background(), &models.CreateRequest{
		GuestID:     8,
		BookingID:   1,
		ServiceType: "cleaning",
	})
	assert.ErrorIs(t, err, ErrInvalidBooking)

	_, err = svc.Create(context.Background(), &models.CreateRequest{
		GuestID:     7,
		BookingID:   99,
		ServiceType: "cleaning",
	})
	assert.ErrorIs(t, err, ErrInvalidBooking)
}

func TestCreateRequestInactiveBooking(t *testing.T) {
	booking := activeBooking()
	booking.Status = domain.BookingStatusCheckedOut
	svc := newTestService(newFakeRequestRepo(), booking, time.Now())

	_, err := svc.Create(context.Background(), &models.CreateRequest{
		GuestID:     7,
		BookingID:   1,
		ServiceType: "cleaning",
	})
	assert.ErrorIs(t, err, ErrBookingNotActive)
}

func TestCancelRequest(t *testing.T) {
	requests := newFakeRequestRepo()
	svc := newTestService(requests, activeBooking(), time.Now())

	created, err := svc.Create(context.Background(), &models.CreateRequest{
		GuestID:     7,
		BookingID:   1,
		ServiceType: "cleaning",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(context.Background(), created.ID, 7))
	assert.Equal(t, domain.RoomServiceStatusCancelled, requests.requests[created.ID].Status)

	// Повторная отмена невозможна
	err = svc.Cancel(context.Background(), created.ID, 7)
	assert.ErrorIs(t, err, ErrNotCancellable)
}

func TestCancelRequestAccessDenied(t *testing.T) {
	requests := newFakeRequestRepo()
	svc := newTestService(requests, activeBooking(), time.Now())

	created, err := svc.Create(context.Background(), &models.CreateRequest{
		GuestID:     7,
		BookingID:   1,
		ServiceType: "cleaning",
	})
	require.NoError(t, err)

	err = svc.Cancel(context.Background(), created.ID, 8)
	assert.ErrorIs(t, err, ErrAccessDenied)

	err = svc.Cancel(context.Background(), 99, 7)
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestUpdateStatusCompletedStampsTime(t *testing.T) {
	requests := newFakeRequestRepo()
	now := time.Date(2026, 7, 2, 18, 0, 0, 0, time.UTC)
	svc := newTestService(requests, activeBooking(), now)

	created, err := svc.Create(context.Background(), &models.CreateRequest{
		GuestID:     7,
		BookingID:   1,
		ServiceType: "food",
	})
	require.NoError(t, err)

	resp, err := svc.UpdateStatus(context.Background(), created.ID, string(domain.RoomServiceStatusCompleted))
	require.NoError(t, err)

	assert.Equal(t, string(domain.RoomServiceStatusCompleted), resp.Status)
	require.NotNil(t, resp.CompletedAt)
	assert.Equal(t, now.Format(time.RFC3339), *resp.CompletedAt)
}

func TestUpdateStatusValidation(t *testing.T) {
	svc := newTestService(newFakeRequestRepo(), activeBooking(), time.Now())

	_, err := svc.UpdateStatus(context.Background(), 1, "finished")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpdateStatus(context.Background(), 99, string(domain.RoomServiceStatusInProgress))
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestListByStatus(t *testing.T) {
	requests := newFakeRequestRepo()
	svc := newTestService(requests, activeBooking(), time.Now())

	for _, serviceType := range []string{"cleaning", "food"} {
		_, err := svc.Create(context.Background(), &models.CreateRequest{
			GuestID:     7,
			BookingID:   1,
			ServiceType: serviceType,
		})
		require.NoError(t, err)
	}

	_, err := svc.UpdateStatus(context.Background(), 1, string(domain.RoomServiceStatusInProgress))
	require.NoError(t, err)

	status := string(domain.RoomServiceStatusPending)
	resp, err := svc.List(context.Background(), &status)
	require.NoError(t, err)
	require.Len(t, resp.Requests, 1)
	assert.Equal(t, "food", resp.Requests[0].ServiceType)

	unknown := "finished"
	_, err = svc.List(context.Background(), &unknown)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
