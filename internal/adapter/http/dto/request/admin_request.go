package request

// StatusUpdateRequest is the admin listing's status patch.
type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// SendMessageRequest carries an operator message for a client.
type SendMessageRequest struct {
	Message string `json:"message"`
}
