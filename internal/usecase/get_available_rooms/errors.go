package get_available_rooms

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_rooms: invalid input data")

	// ErrInvalidDateRange возвращается, когда дата выезда не позже даты заезда
	ErrInvalidDateRange = errors.New("get_available_rooms: check-out must be after check-in")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_rooms: internal error")
)
