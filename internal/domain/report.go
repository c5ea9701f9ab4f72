package domain

import (
	"math"
	"time"
)

// DayOccupancy represents the occupancy of the hotel on a single calendar day
type DayOccupancy struct {
	Date       time.Time
	Occupied   int // количество занятых номеров
	TotalRooms int // общее количество номеров в каталоге
}

// Rate returns the occupancy rate as a percentage (0-100), rounded to 2 decimals
func (d *DayOccupancy) Rate() float64 {
	if d.TotalRooms == 0 {
		return 0
	}
	return Round2(float64(d.Occupied) / float64(d.TotalRooms) * 100)
}

// BookingRevenue represents the revenue of a single booking clipped to a report window
type BookingRevenue struct {
	BookingID  int64
	RoomNumber string
	RoomType   RoomType
	GuestID    int64
	Nights     int     // оплачиваемые ночи внутри отчётного окна
	Amount     float64 // Nights * цена за ночь
}

// Round2 округляет значение до 2 знаков после запятой
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
