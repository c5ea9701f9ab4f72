package models

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// Request модели

// CreateRequest запрос на создание запроса рум-сервиса
type CreateRequest struct {
	GuestID     int64  `json:"guestId"`
	BookingID   int64  `json:"bookingId"`
	ServiceType string `json:"serviceType"`
	Notes       string `json:"notes,omitempty"`
}

// Response модели

// RequestResponse ответ с данными запроса рум-сервиса
type RequestResponse struct {
	ID          int64     `json:"id"`
	BookingID   int64     `json:"bookingId"`
	GuestID     int64     `json:"guestId"`
	RoomNumber  string    `json:"roomNumber"`
	ServiceType string    `json:"serviceType"`
	Notes       string    `json:"notes,omitempty"`
	Status      string    `json:"status"`
	RequestedAt time.Time `json:"requestedAt"`
	CompletedAt *string   `json:"completedAt,omitempty"` // ISO 8601
}

// RequestListResponse ответ со списком запросов
type RequestListResponse struct {
	Requests []RequestResponse `json:"requests"`
}

// Методы конвертации

// FromDomainRequest конвертирует domain модель в DTO
func FromDomainRequest(r *domain.RoomServiceRequest) *RequestResponse {
	if r == nil {
		return nil
	}

	resp := &RequestResponse{
		ID:          r.ID,
		BookingID:   r.BookingID,
		GuestID:     r.GuestID,
		RoomNumber:  r.RoomNumber,
		ServiceType: r.ServiceType,
		Notes:       r.Notes,
		Status:      string(r.Status),
		RequestedAt: r.RequestedAt,
	}

	if r.CompletedAt != nil {
		completedStr := r.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &completedStr
	}

	return resp
}

// FromDomainRequestList конвертирует список domain моделей в DTO
func FromDomainRequestList(requests []*domain.RoomServiceRequest) *RequestListResponse {
	resp := &RequestListResponse{
		Requests: make([]RequestResponse, 0, len(requests)),
	}

	for _, request := range requests {
		if requestResp := FromDomainRequest(request); requestResp != nil {
			resp.Requests = append(resp.Requests, *requestResp)
		}
	}

	return resp
}
