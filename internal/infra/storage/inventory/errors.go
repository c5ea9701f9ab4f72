package inventory

import "errors"

var (
	// ErrItemNotFound возвращается, когда позиция склада не найдена
	ErrItemNotFound = errors.New("inventory.repository: item not found")

	// ErrOrderNotFound возвращается, когда заказ на пополнение не найден
	ErrOrderNotFound = errors.New("inventory.repository: purchase order not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("inventory.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("inventory.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("inventory.repository: failed to scan row")
)
