package models

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	GuestID int64 `json:"guestId"`
}

// GetGuestBookingsRequest запрос на получение истории бронирований гостя
type GetGuestBookingsRequest struct {
	GuestID          int64 `json:"guestId"`
	IncludeCancelled bool  `json:"includeCancelled,omitempty"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID       int64  `json:"id"`
	GuestID  int64  `json:"guestId"`
	RoomID   int64  `json:"roomId"`
	CheckIn  string `json:"checkIn"`  // "2026-07-01"
	CheckOut string `json:"checkOut"` // "2026-07-03"
	Status   string `json:"status"`
	Nights   int    `json:"nights"`

	// Денормализованные данные номера
	RoomNumber string  `json:"roomNumber"`
	RoomType   string  `json:"roomType"`
	RoomPrice  float64 `json:"roomPrice"`

	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// BillResponse счёт за проживание
type BillResponse struct {
	BookingID         int64   `json:"bookingId"`
	RoomNumber        string  `json:"roomNumber"`
	Nights            int     `json:"nights"`
	RoomRate          float64 `json:"roomRate"`          // цена за ночь
	RoomCharge        float64 `json:"roomCharge"`        // nights * roomRate
	RoomServiceCount  int     `json:"roomServiceCount"`  // выполненных запросов рум-сервиса
	RoomServiceCharge float64 `json:"roomServiceCharge"` // суммарно за рум-сервис
	Subtotal          float64 `json:"subtotal"`
	Tax               float64 `json:"tax"`
	Total             float64 `json:"total"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:         b.ID,
		GuestID:    b.GuestID,
		RoomID:     b.RoomID,
		CheckIn:    b.CheckIn.Format(domain.DateFormat),
		CheckOut:   b.CheckOut.Format(domain.DateFormat),
		Status:     string(b.Status),
		Nights:     b.Nights(),
		RoomNumber: b.RoomNumber,
		RoomType:   string(b.RoomType),
		RoomPrice:  b.RoomPrice,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}
