package occupancy_report

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("occupancy_report: invalid input data")

	// ErrInvalidDateRange возвращается, когда начало окна позже конца
	ErrInvalidDateRange = errors.New("occupancy_report: start date is after end date")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("occupancy_report: internal error")
)
