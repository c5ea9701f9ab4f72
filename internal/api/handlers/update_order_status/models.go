package update_order_status

// UpdateOrderStatusRequest HTTP request model
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}
