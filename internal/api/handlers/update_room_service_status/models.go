package update_room_service_status

// UpdateRequestStatusRequest HTTP request model
type UpdateRequestStatusRequest struct {
	Status string `json:"status"`
}
