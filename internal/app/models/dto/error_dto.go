package dto

import "encoding/json"

// ErrorBody is the loose shape of backend error payloads. Backends answer with
// {"message": "..."}, {"error": "..."} or {"error": {"message": "..."}}.
type ErrorBody struct {
	Message string          `json:"message"`
	Error   json.RawMessage `json:"error"`
	Details string          `json:"details"`
}

// Text returns the most specific human-readable message in the body
func (b ErrorBody) Text() string {
	if b.Message != "" {
		return b.Message
	}
	if len(b.Error) > 0 {
		var s string
		if err := json.Unmarshal(b.Error, &s); err == nil && s != "" {
			return s
		}
		var nested struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(b.Error, &nested); err == nil && nested.Message != "" {
			return nested.Message
		}
	}
	return b.Details
}
