package domain

import "time"

// InventoryItem represents a stock item in the hotel inventory
type InventoryItem struct {
	ID        int64
	Name      string // уникальное название
	Category  string
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsLowStock returns true if the item quantity is below the restock threshold
func (i *InventoryItem) IsLowStock() bool {
	return i.Quantity < LowStockThreshold
}

// InventoryFilter фильтр для получения позиций склада
type InventoryFilter struct {
	Category *string // Фильтр по категории (опционально)
	LowStock bool    // Только позиции с низким остатком
}

// OrderStatus represents the state of a purchase order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusOrdered   OrderStatus = "ordered"
	OrderStatusReceived  OrderStatus = "received"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// PurchaseOrder represents a restock order for an inventory item
type PurchaseOrder struct {
	ID       int64
	ItemID   int64
	Quantity int
	Status   OrderStatus

	// Denormalized item data for listings
	ItemName     string
	ItemCategory string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsValidOrderStatus проверяет, что статус заказа допустим
func IsValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusOrdered, OrderStatusReceived, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal returns true if the order cannot change status anymore
func (o *PurchaseOrder) IsTerminal() bool {
	return o.Status == OrderStatusReceived || o.Status == OrderStatusCancelled
}
