package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidBooking возвращается, когда бронирование не существует
	// или не принадлежит гостю
	ErrInvalidBooking = errors.New("invalid booking")

	// ErrAccessDenied возвращается, когда у гостя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrNotCancellable возвращается для завершённых и уже отменённых бронирований
	ErrNotCancellable = errors.New("booking cannot be cancelled")

	// ErrWithinCancellationWindow возвращается, когда до заезда осталось
	// меньше обязательного запаса
	ErrWithinCancellationWindow = errors.New("too late to cancel booking")

	// ErrInvalidStatusTransition возвращается при недопустимой смене статуса
	ErrInvalidStatusTransition = errors.New("invalid booking status transition")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
