package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/yigit/campusconnect/internal/app/models/dto"
	"github.com/yigit/campusconnect/internal/pkg/apperrors"
)

// ChatbotQuestions lists the canned questions the chatbot can answer
func (c *Client) ChatbotQuestions(ctx context.Context) ([]string, error) {
	var raw []json.RawMessage
	if err := c.do(ctx, call{method: http.MethodGet, path: "/chatbot/questions"}, &raw); err != nil {
		return nil, err
	}

	questions := make([]string, 0, len(raw))
	for _, item := range raw {
		if q := textOf(item, "question", "text"); q != "" {
			questions = append(questions, q)
		}
	}
	return questions, nil
}

// AskChatbot sends one question and returns the answer text
func (c *Client) AskChatbot(ctx context.Context, question string) (string, error) {
	var raw json.RawMessage
	err := c.do(ctx, call{method: http.MethodPost, path: "/chatbot/ask", body: dto.AskRequest{Question: question}}, &raw)
	if err != nil {
		return "", err
	}
	answer := textOf(raw, "answer", "response", "message")
	if answer == "" {
		return "", fmt.Errorf("%w: chatbot answer is empty", apperrors.ErrDecode)
	}
	return answer, nil
}

// textOf extracts a string from a JSON string or from the first non-empty of
// the given keys of a JSON object.
func textOf(raw json.RawMessage, keys ...string) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return ""
	}
	for _, k := range keys {
		if v, ok := obj[k]; ok {
			if err := json.Unmarshal(v, &s); err == nil && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}
