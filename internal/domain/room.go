package domain

import "time"

// RoomType represents the category of a hotel room
type RoomType string

const (
	RoomTypeStandard RoomType = "standard"
	RoomTypeDeluxe   RoomType = "deluxe"
	RoomTypeSuite    RoomType = "suite"
)

// RoomStatus represents the cached "today" state of a room
//
// Статус - денормализованная подсказка ("занят ли номер прямо сейчас").
// Авторитетная доступность на диапазон дат всегда пересчитывается по
// интервалам бронирований; статус никогда не участвует в этих запросах.
type RoomStatus string

const (
	RoomStatusAvailable RoomStatus = "available"
	RoomStatusOccupied  RoomStatus = "occupied"
)

// Room represents a bookable hotel room
type Room struct {
	ID         int64
	RoomNumber string // уникальный человекочитаемый номер ("101")
	Type       RoomType
	Price      float64 // цена за ночь
	Capacity   int
	Status     RoomStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidRoomTypes список допустимых типов номеров
var ValidRoomTypes = []RoomType{
	RoomTypeStandard,
	RoomTypeDeluxe,
	RoomTypeSuite,
}

// IsValidRoomType проверяет, что тип номера допустим
func IsValidRoomType(t RoomType) bool {
	for _, valid := range ValidRoomTypes {
		if t == valid {
			return true
		}
	}
	return false
}

// IsValidRoomStatus проверяет, что статус номера допустим
func IsValidRoomStatus(s RoomStatus) bool {
	return s == RoomStatusAvailable || s == RoomStatusOccupied
}

// RoomsFilter фильтр для получения номеров каталога
type RoomsFilter struct {
	Status *RoomStatus // Фильтр по кэшированному статусу (опционально)
	Type   *RoomType   // Фильтр по типу номера (опционально)
}

// RoomUpdate частичное обновление атрибутов номера
// nil-поля не изменяются
type RoomUpdate struct {
	Type     *RoomType
	Price    *float64
	Capacity *int
	Status   *RoomStatus
}

// IsEmpty проверяет, что обновление не содержит изменений
func (u RoomUpdate) IsEmpty() bool {
	return u.Type == nil && u.Price == nil && u.Capacity == nil && u.Status == nil
}
