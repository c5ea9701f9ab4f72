package get_available_rooms

import (
	"time"
)

// Request модель запроса на поиск свободных номеров
// Интервал полуоткрытый [CheckIn, CheckOut): бронирование, заканчивающееся
// в день заезда, не делает номер занятым
type Request struct {
	CheckIn  time.Time // Дата заезда
	CheckOut time.Time // Дата выезда
	RoomType *string   // Фильтр по типу номера (опционально)
}

// Response модель ответа со списком свободных номеров
type Response struct {
	CheckIn  time.Time // Дата заезда
	CheckOut time.Time // Дата выезда
	Rooms    []Room    // Свободные номера, по цене по возрастанию
}

// Room модель свободного номера
type Room struct {
	ID         int64   // ID номера
	RoomNumber string  // Человекочитаемый номер
	Type       string  // Тип номера
	Price      float64 // Цена за ночь
	Capacity   int     // Вместимость
	TotalPrice float64 // Цена за весь запрошенный интервал
}
