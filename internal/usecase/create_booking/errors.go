package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDateRange возвращается, когда дата выезда не позже даты заезда
	ErrInvalidDateRange = errors.New("create_booking: check-out must be after check-in")

	// ErrPastCheckIn возвращается, когда дата заезда раньше сегодняшнего дня
	ErrPastCheckIn = errors.New("create_booking: check-in date is in the past")

	// ErrGuestNotFound возвращается, когда профиль гостя не существует
	ErrGuestNotFound = errors.New("create_booking: guest not found")

	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrRoomUnavailable возвращается, когда номер занят на запрошенные даты
	ErrRoomUnavailable = errors.New("create_booking: room is not available for the requested dates")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
