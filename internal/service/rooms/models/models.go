package models

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// Request модели

// CreateRoomRequest запрос на добавление номера в каталог
type CreateRoomRequest struct {
	RoomNumber string  `json:"roomNumber"`
	Type       string  `json:"type"`
	Price      float64 `json:"price"`
	Capacity   int     `json:"capacity"`
}

// UpdateRoomRequest частичное обновление номера, nil-поля не изменяются
type UpdateRoomRequest struct {
	Type     *string  `json:"type,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	Capacity *int     `json:"capacity,omitempty"`
	Status   *string  `json:"status,omitempty"`
}

// ListRoomsRequest фильтры каталога номеров
type ListRoomsRequest struct {
	Status *string `json:"status,omitempty"`
	Type   *string `json:"type,omitempty"`
}

// Response модели

// RoomResponse ответ с данными номера
type RoomResponse struct {
	ID         int64     `json:"id"`
	RoomNumber string    `json:"roomNumber"`
	Type       string    `json:"type"`
	Price      float64   `json:"price"`
	Capacity   int       `json:"capacity"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// RoomListResponse ответ со списком номеров
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// DashboardStatsResponse сводка для дашборда админки
type DashboardStatsResponse struct {
	TotalRooms     int     `json:"totalRooms"`
	OccupiedRooms  int     `json:"occupiedRooms"`
	OccupancyRate  float64 `json:"occupancyRate"` // occupied / total * 100
	ActiveBookings int     `json:"activeBookings"`
	Employees      int     `json:"employees"`
	LowStockItems  int     `json:"lowStockItems"`
	PendingOrders  int     `json:"pendingOrders"`
}

// Методы конвертации

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(r *domain.Room) *RoomResponse {
	if r == nil {
		return nil
	}

	return &RoomResponse{
		ID:         r.ID,
		RoomNumber: r.RoomNumber,
		Type:       string(r.Type),
		Price:      r.Price,
		Capacity:   r.Capacity,
		Status:     string(r.Status),
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// FromDomainRoomList конвертирует список domain моделей в DTO
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	resp := &RoomListResponse{
		Rooms: make([]RoomResponse, 0, len(rooms)),
	}

	for _, room := range rooms {
		if roomResp := FromDomainRoom(room); roomResp != nil {
			resp.Rooms = append(resp.Rooms, *roomResp)
		}
	}

	return resp
}
