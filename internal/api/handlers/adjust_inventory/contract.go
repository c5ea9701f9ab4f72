package adjust_inventory

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/inventory/models"
)

type InventoryService interface {
	AdjustQuantity(ctx context.Context, id int64, req *models.AdjustQuantityRequest) (*models.ItemResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
