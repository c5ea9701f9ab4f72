package revenue_report

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("revenue_report: invalid input data")

	// ErrInvalidDateRange возвращается, когда начало окна позже конца
	ErrInvalidDateRange = errors.New("revenue_report: start date is after end date")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("revenue_report: internal error")
)
