package models

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// Request модели

// AddItemRequest запрос на добавление позиции склада
// Если позиция с таким названием уже существует, её остаток увеличивается
type AddItemRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
}

// AdjustQuantityRequest запрос на изменение остатка позиции
// Delta может быть отрицательной (списание)
type AdjustQuantityRequest struct {
	Delta int `json:"delta"`
}

// ListItemsRequest фильтры склада
type ListItemsRequest struct {
	Category *string `json:"category,omitempty"`
	LowStock bool    `json:"lowStock,omitempty"`
}

// PlaceOrderRequest запрос на заказ пополнения
type PlaceOrderRequest struct {
	ItemID   int64 `json:"itemId"`
	Quantity int   `json:"quantity"`
}

// Response модели

// ItemResponse ответ с данными позиции склада
type ItemResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Quantity  int       `json:"quantity"`
	LowStock  bool      `json:"lowStock"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ItemListResponse ответ со списком позиций
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
}

// OrderResponse ответ с данными заказа на пополнение
type OrderResponse struct {
	ID           int64     `json:"id"`
	ItemID       int64     `json:"itemId"`
	ItemName     string    `json:"itemName"`
	ItemCategory string    `json:"itemCategory"`
	Quantity     int       `json:"quantity"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// OrderListResponse ответ со списком заказов
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
}

// Методы конвертации

// FromDomainItem конвертирует domain модель в DTO
func FromDomainItem(i *domain.InventoryItem) *ItemResponse {
	if i == nil {
		return nil
	}

	return &ItemResponse{
		ID:        i.ID,
		Name:      i.Name,
		Category:  i.Category,
		Quantity:  i.Quantity,
		LowStock:  i.IsLowStock(),
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

// FromDomainItemList конвертирует список domain моделей в DTO
func FromDomainItemList(items []*domain.InventoryItem) *ItemListResponse {
	resp := &ItemListResponse{
		Items: make([]ItemResponse, 0, len(items)),
	}

	for _, item := range items {
		if itemResp := FromDomainItem(item); itemResp != nil {
			resp.Items = append(resp.Items, *itemResp)
		}
	}

	return resp
}

// FromDomainOrder конвертирует domain модель в DTO
func FromDomainOrder(o *domain.PurchaseOrder) *OrderResponse {
	if o == nil {
		return nil
	}

	return &OrderResponse{
		ID:           o.ID,
		ItemID:       o.ItemID,
		ItemName:     o.ItemName,
		ItemCategory: o.ItemCategory,
		Quantity:     o.Quantity,
		Status:       string(o.Status),
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

// FromDomainOrderList конвертирует список domain моделей в DTO
func FromDomainOrderList(orders []*domain.PurchaseOrder) *OrderListResponse {
	resp := &OrderListResponse{
		Orders: make([]OrderResponse, 0, len(orders)),
	}

	for _, order := range orders {
		if orderResp := FromDomainOrder(order); orderResp != nil {
			resp.Orders = append(resp.Orders, *orderResp)
		}
	}

	return resp
}
