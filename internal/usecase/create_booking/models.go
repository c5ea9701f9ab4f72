package create_booking

import (
	"time"
)

// Request модель запроса на создание бронирования
// Даты - полуночи в таймзоне отеля, интервал полуоткрытый [CheckIn, CheckOut)
type Request struct {
	GuestID  int64     // ID гостя (внешний профиль)
	RoomID   int64     // ID номера
	CheckIn  time.Time // Дата заезда
	CheckOut time.Time // Дата выезда (не занята)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID       int64     // ID созданного бронирования
	GuestID  int64     // ID гостя
	RoomID   int64     // ID номера
	CheckIn  time.Time // Дата заезда
	CheckOut time.Time // Дата выезда
	Status   string    // Статус бронирования
	Nights   int       // Количество ночей

	// Денормализованные данные номера
	RoomNumber string  // Человекочитаемый номер
	RoomType   string  // Тип номера
	RoomPrice  float64 // Цена за ночь
	TotalPrice float64 // Ночей * цена за ночь

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
