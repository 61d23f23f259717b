package dto

// ConnectionRequest is a connection request received by the viewer
type ConnectionRequest struct {
	ID     int64        `json:"id,omitempty"`
	Sender *UserSummary `json:"sender,omitempty"`
	Status string       `json:"status"`
}

// SenderName returns the sender's name or an empty string
func (c ConnectionRequest) SenderName() string {
	if c.Sender == nil {
		return ""
	}
	return c.Sender.Name
}

// SenderEmail returns the sender's email or an empty string
func (c ConnectionRequest) SenderEmail() string {
	if c.Sender == nil {
		return ""
	}
	return c.Sender.Email
}
