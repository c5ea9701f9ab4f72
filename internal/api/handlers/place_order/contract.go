package place_order

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/inventory/models"
)

type InventoryService interface {
	PlaceOrder(ctx context.Context, req *models.PlaceOrderRequest) (*models.OrderResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
