package update_housekeeping_status

// UpdateTaskStatusRequest HTTP request model
type UpdateTaskStatusRequest struct {
	Status string `json:"status"`
}
