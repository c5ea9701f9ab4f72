package place_order

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/service/inventory"
	"github.com/m04kA/SMC-HotelService/internal/service/inventory/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgItemNotFound       = "позиция не найдена"
)

type Handler struct {
	service InventoryService
	logger  Logger
}

func NewHandler(service InventoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/inventory/orders
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.PlaceOrderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /inventory/orders - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	order, err := h.service.PlaceOrder(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, inventory.ErrItemNotFound):
			h.logger.Warn("POST /inventory/orders - Item not found: item_id=%d", req.ItemID)
			handlers.RespondNotFound(w, msgItemNotFound)

		case errors.Is(err, inventory.ErrInvalidInput):
			h.logger.Warn("POST /inventory/orders - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /inventory/orders - Failed to place order: item_id=%d, error=%v",
				req.ItemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /inventory/orders - Order placed successfully: order_id=%d, item_id=%d, quantity=%d",
		order.ID, req.ItemID, req.Quantity)
	handlers.RespondJSON(w, http.StatusCreated, order)
}
