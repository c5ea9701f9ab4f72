package inventory

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// InventoryRepository интерфейс репозитория склада
type InventoryRepository interface {
	CreateItem(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error)
	GetItemByID(ctx context.Context, id int64) (*domain.InventoryItem, error)
	GetItemByName(ctx context.Context, name string) (*domain.InventoryItem, error)
	ListItems(ctx context.Context, filter domain.InventoryFilter) ([]*domain.InventoryItem, error)
	SetItemQuantity(ctx context.Context, id int64, quantity int) error
	CreateOrder(ctx context.Context, order *domain.PurchaseOrder) (*domain.PurchaseOrder, error)
	GetOrderByID(ctx context.Context, id int64) (*domain.PurchaseOrder, error)
	ListOrders(ctx context.Context, status *domain.OrderStatus) ([]*domain.PurchaseOrder, error)
	UpdateOrderStatus(ctx context.Context, id int64, status domain.OrderStatus) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
