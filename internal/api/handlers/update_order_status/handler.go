package update_order_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/service/inventory"
)

const (
	msgInvalidOrderID     = "некорректный ID заказа"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStatus      = "некорректный статус заказа"
	msgNotFound           = "заказ не найден"
	msgOrderFinalized     = "заказ уже завершен"
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

// Handle PATCH /api/v1/inventory/orders/{orderId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем orderId из URL
	vars := mux.Vars(r)
	orderIDStr := vars["orderId"]

	orderID, err := strconv.ParseInt(orderIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /inventory/orders/{id}/status - Invalid order ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOrderID)
		return
	}

	var req UpdateOrderStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /inventory/orders/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	order, err := h.service.UpdateOrderStatus(r.Context(), orderID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, inventory.ErrOrderNotFound):
			h.logger.Warn("PATCH /inventory/orders/{id}/status - Order not found: order_id=%d", orderID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, inventory.ErrOrderFinalized):
			h.logger.Warn("PATCH /inventory/orders/{id}/status - Order finalized: order_id=%d", orderID)
			handlers.RespondError(w, http.StatusConflict, msgOrderFinalized)

		case errors.Is(err, inventory.ErrInvalidInput):
			h.logger.Warn("PATCH /inventory/orders/{id}/status - Invalid status: order_id=%d, status=%s",
				orderID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PATCH /inventory/orders/{id}/status - Failed to update status: order_id=%d, error=%v",
				orderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /inventory/orders/{id}/status - Order status updated successfully: order_id=%d, status=%s",
		orderID, req.Status)
	handlers.RespondJSON(w, http.StatusOK, order)
}
