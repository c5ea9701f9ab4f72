package get_inventory

import (
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/service/inventory/models"
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

// Handle GET /api/v1/inventory
// Query params: category (optional), lowStock (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	serviceReq := &models.ListItemsRequest{
		LowStock: query.Get("lowStock") == "true",
	}
	if category := query.Get("category"); category != "" {
		serviceReq.Category = &category
	}

	result, err := h.service.ListItems(r.Context(), serviceReq)
	if err != nil {
		h.logger.Error("GET /inventory - Failed to list items: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /inventory - Items retrieved successfully: count=%d", len(result.Items))
	handlers.RespondJSON(w, http.StatusOK, result)
}
