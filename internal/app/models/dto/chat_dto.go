package dto

// ChatRole identifies who produced a chat turn
type ChatRole string

const (
	ChatRoleUser ChatRole = "user"
	ChatRoleBot  ChatRole = "bot"
)

// ChatExchange is one turn of the chatbot conversation. It only lives on the
// client side and is never sent to the backend.
type ChatExchange struct {
	Role ChatRole `json:"role"`
	Text string   `json:"text"`
}

// AskRequest is the payload for POST /chatbot/ask
type AskRequest struct {
	Question string `json:"question"`
}

// AskForm is the chatbot question form
type AskForm struct {
	Question string `form:"question" validate:"notblank,max=500"`
}
