package get_inventory

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/inventory/models"
)

type InventoryService interface {
	ListItems(ctx context.Context, req *models.ListItemsRequest) (*models.ItemListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
