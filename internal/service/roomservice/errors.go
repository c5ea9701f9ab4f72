package roomservice

import "errors"

var (
	// ErrRequestNotFound возвращается, когда запрос рум-сервиса не найден
	ErrRequestNotFound = errors.New("room service request not found")

	// ErrInvalidBooking возвращается, когда бронирование не существует
	// или не принадлежит гостю
	ErrInvalidBooking = errors.New("invalid booking")

	// ErrBookingNotActive возвращается, когда бронирование не в статусе
	// confirmed/checked_in
	ErrBookingNotActive = errors.New("booking is not active")

	// ErrNotCancellable возвращается для выполненных и отменённых запросов
	ErrNotCancellable = errors.New("request cannot be cancelled")

	// ErrAccessDenied возвращается, когда у гостя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
