package get_orders

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/inventory/models"
)

type InventoryService interface {
	ListOrders(ctx context.Context, status *string) (*models.OrderListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
