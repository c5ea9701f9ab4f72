package update_room_status

// UpdateRoomStatusRequest HTTP request model
type UpdateRoomStatusRequest struct {
	Status string `json:"status"`
}
