package services

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/yigit/campusconnect/internal/app/models/dto"
	"github.com/yigit/campusconnect/internal/pkg/apperrors"
)

const (
	// ChatGreeting opens every conversation
	ChatGreeting = "Hello! I'm here to help you with CampusConnect. You can ask me about connecting with alumni, mentorship, or forum participation."
	// ChatFallback replaces the answer when the backend call fails
	ChatFallback = "Sorry, I encountered an error. Please try again."
)

// Conversation is an append-only chat log seeded with the greeting
type Conversation struct {
	mu        sync.Mutex
	exchanges []dto.ChatExchange
}

// NewConversation starts a log holding only the greeting
func NewConversation() *Conversation {
	return &Conversation{
		exchanges: []dto.ChatExchange{{Role: dto.ChatRoleBot, Text: ChatGreeting}},
	}
}

func (c *Conversation) append(e dto.ChatExchange) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.exchanges = append(c.exchanges, e)
}

// Exchanges returns a copy of the log in order
func (c *Conversation) Exchanges() []dto.ChatExchange {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]dto.ChatExchange, len(c.exchanges))
	copy(out, c.exchanges)
	return out
}

// Len returns the number of turns
func (c *Conversation) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.exchanges)
}

// ChatbotView is the chatbot page model
type ChatbotView struct {
	Questions []string
	Exchanges []dto.ChatExchange
	Toasts    []dto.Toast
}

// ChatbotService defines the interface for the assistant page
type ChatbotService interface {
	Questions(ctx context.Context) ([]string, []dto.Toast)
	Ask(ctx context.Context, conv *Conversation, question string) (dto.ChatExchange, error)
	View(ctx context.Context, conv *Conversation) ChatbotView
}

// chatbotServiceImpl implements the ChatbotService interface
type chatbotServiceImpl struct {
	api    ChatbotAPI
	logger zerolog.Logger
}

// NewChatbotService creates a new chatbot service instance
func NewChatbotService(api ChatbotAPI, logger zerolog.Logger) ChatbotService {
	return &chatbotServiceImpl{
		api:    api,
		logger: logger,
	}
}

// Questions fetches the canned questions
func (s *chatbotServiceImpl) Questions(ctx context.Context) ([]string, []dto.Toast) {
	questions, err := s.api.ChatbotQuestions(ctx)
	if err != nil {
		return nil, []dto.Toast{ToastForError(s.logger, err, "Error", "Failed to load chatbot questions")}
	}
	return questions, nil
}

// Ask appends the question and then exactly one bot turn: the answer, or the
// fallback text when the call fails. A blank question appends nothing.
func (s *chatbotServiceImpl) Ask(ctx context.Context, conv *Conversation, question string) (dto.ChatExchange, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return dto.ChatExchange{}, apperrors.NewValidationError("question", "Question is required")
	}

	conv.append(dto.ChatExchange{Role: dto.ChatRoleUser, Text: question})

	reply := dto.ChatExchange{Role: dto.ChatRoleBot}
	answer, err := s.api.AskChatbot(ctx, question)
	if err != nil {
		s.logger.Warn().Err(err).Str("question", question).Msg("Chatbot answer failed")
		reply.Text = ChatFallback
	} else {
		reply.Text = answer
	}
	conv.append(reply)
	return reply, nil
}

// View combines the question list with the current log
func (s *chatbotServiceImpl) View(ctx context.Context, conv *Conversation) ChatbotView {
	questions, toasts := s.Questions(ctx)
	return ChatbotView{
		Questions: questions,
		Exchanges: conv.Exchanges(),
		Toasts:    toasts,
	}
}
