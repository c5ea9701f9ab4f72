package revenue_report

import (
	"time"
)

// Request модель запроса отчёта по выручке
// Окно [StartDate, EndDate] включает обе границы
type Request struct {
	StartDate time.Time
	EndDate   time.Time
}

// Response модель отчёта по выручке
type Response struct {
	StartDate    time.Time
	EndDate      time.Time
	Bookings     []BookingRevenue   // по бронированиям, в порядке check_in, id
	TotalRevenue float64            // суммарная выручка за окно
	ByRoomType   map[string]float64 // выручка в разрезе типов номеров
}

// BookingRevenue выручка одного бронирования, обрезанная по окну отчёта
type BookingRevenue struct {
	BookingID  int64
	RoomNumber string
	RoomType   string
	GuestID    int64
	Nights     int     // оплачиваемые ночи внутри окна
	Amount     float64 // Nights * цена за ночь
}
