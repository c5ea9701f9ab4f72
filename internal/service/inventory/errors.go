package inventory

import "errors"

var (
	// ErrItemNotFound возвращается, когда позиция склада не найдена
	ErrItemNotFound = errors.New("inventory item not found")

	// ErrOrderNotFound возвращается, когда заказ на пополнение не найден
	ErrOrderNotFound = errors.New("purchase order not found")

	// ErrOrderFinalized возвращается при попытке изменить заказ
	// в терминальном статусе (received/cancelled)
	ErrOrderFinalized = errors.New("purchase order is finalized")

	// ErrInsufficientStock возвращается, когда списание превышает остаток
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
