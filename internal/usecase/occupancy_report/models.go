package occupancy_report

import (
	"time"
)

// Request модель запроса отчёта по заполняемости
// Окно [StartDate, EndDate] включает обе границы
type Request struct {
	StartDate time.Time
	EndDate   time.Time
}

// Response модель отчёта по заполняемости
type Response struct {
	StartDate   time.Time
	EndDate     time.Time
	TotalRooms  int     // общее количество номеров в каталоге
	Bookings    int     // количество бронирований, учтённых в отчёте
	Days        []Day   // дневная таблица в хронологическом порядке
	AverageRate float64 // средняя заполняемость за окно, %
}

// Day заполняемость на один календарный день
type Day struct {
	Date     time.Time
	Occupied int     // занятых номеров
	Rate     float64 // occupied / totalRooms * 100, округлено до сотых
}
