package roomservice

import "errors"

var (
	// ErrRequestNotFound возвращается, когда запрос рум-сервиса не найден
	ErrRequestNotFound = errors.New("roomservice.repository: request not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("roomservice.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("roomservice.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("roomservice.repository: failed to scan row")
)
