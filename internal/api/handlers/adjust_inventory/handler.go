package adjust_inventory

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/service/inventory"
	"github.com/m04kA/SMC-HotelService/internal/service/inventory/models"
)

const (
	msgInvalidItemID      = "некорректный ID позиции"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "позиция не найдена"
	msgInsufficientStock  = "недостаточно остатка для списания"
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

// Handle PATCH /api/v1/inventory/{itemId}/quantity
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем itemId из URL
	vars := mux.Vars(r)
	itemIDStr := vars["itemId"]

	itemID, err := strconv.ParseInt(itemIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /inventory/{id}/quantity - Invalid item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	var req models.AdjustQuantityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /inventory/{id}/quantity - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	item, err := h.service.AdjustQuantity(r.Context(), itemID, &req)
	if err != nil {
		switch {
		case errors.Is(err, inventory.ErrItemNotFound):
			h.logger.Warn("PATCH /inventory/{id}/quantity - Item not found: item_id=%d", itemID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, inventory.ErrInsufficientStock):
			h.logger.Warn("PATCH /inventory/{id}/quantity - Insufficient stock: item_id=%d, delta=%d",
				itemID, req.Delta)
			handlers.RespondError(w, http.StatusConflict, msgInsufficientStock)

		default:
			h.logger.Error("PATCH /inventory/{id}/quantity - Failed to adjust quantity: item_id=%d, error=%v",
				itemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /inventory/{id}/quantity - Quantity adjusted successfully: item_id=%d, quantity=%d",
		itemID, item.Quantity)
	handlers.RespondJSON(w, http.StatusOK, item)
}
