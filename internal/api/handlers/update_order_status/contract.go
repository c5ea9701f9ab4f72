package update_order_status

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/inventory/models"
)

type InventoryService interface {
	UpdateOrderStatus(ctx context.Context, id int64, status string) (*models.OrderResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
