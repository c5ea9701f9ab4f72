package get_orders

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/service/inventory"
)

const (
	msgInvalidStatus = "некорректный статус заказа"
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

// Handle GET /api/v1/inventory/orders
// Query params: status (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var status *string
	if s := r.URL.Query().Get("status"); s != "" {
		status = &s
	}

	result, err := h.service.ListOrders(r.Context(), status)
	if err != nil {
		switch {
		case errors.Is(err, inventory.ErrInvalidInput):
			h.logger.Warn("GET /inventory/orders - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /inventory/orders - Failed to list orders: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /inventory/orders - Orders retrieved successfully: count=%d", len(result.Orders))
	handlers.RespondJSON(w, http.StatusOK, result)
}
