package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/campusconnect/internal/app/models/dto"
	"github.com/yigit/campusconnect/internal/app/services"
	"github.com/yigit/campusconnect/internal/app/views"
	"github.com/yigit/campusconnect/internal/middleware"
)

// ChatCookie names the conversation id cookie
const ChatCookie = "cc_chat"

// ChatbotController handles the assistant page
type ChatbotController struct {
	chatbotService services.ChatbotService
	conversations  *services.ConversationStore
	flash          *middleware.Flash
	secureCookie   bool
	logger         zerolog.Logger
}

// NewChatbotController creates a new ChatbotController
func NewChatbotController(
	chatbotService services.ChatbotService,
	conversations *services.ConversationStore,
	flash *middleware.Flash,
	secureCookie bool,
	logger zerolog.Logger,
) *ChatbotController {
	return &ChatbotController{
		chatbotService: chatbotService,
		conversations:  conversations,
		flash:          flash,
		secureCookie:   secureCookie,
		logger:         logger,
	}
}

// Show renders the question list and the visitor's conversation. Visitors
// who have not asked anything see the greeting without taking a store slot.
func (cc *ChatbotController) Show(c *gin.Context) {
	id, _ := c.Cookie(ChatCookie)
	conv, ok := cc.conversations.Lookup(id)
	if !ok {
		conv = services.NewConversation()
	}
	view := cc.chatbotService.View(c.Request.Context(), conv)
	views.Render(c, http.StatusOK, "chatbot.html", "Assistant", view, view.Toasts...)
}

// Ask records a question and its answer, then redirects back to the page
func (cc *ChatbotController) Ask(c *gin.Context) {
	var form dto.AskForm
	if err := middleware.BindForm(c, &form); err != nil {
		_ = c.Error(err)
		return
	}

	current, _ := c.Cookie(ChatCookie)
	conv, known := cc.conversations.Lookup(current)
	if !known {
		conv = services.NewConversation()
	}

	if _, err := cc.chatbotService.Ask(c.Request.Context(), conv, form.Question); err != nil {
		cc.flash.Set(c, services.ToastForError(cc.logger, err, "Validation Error", "Please enter a question"))
		c.Redirect(http.StatusSeeOther, "/chatbot")
		return
	}

	// first question: the conversation takes a store slot and the visitor an id
	if !known {
		cc.setChatCookie(c, cc.conversations.Add(conv))
	}
	c.Redirect(http.StatusSeeOther, "/chatbot")
}

func (cc *ChatbotController) setChatCookie(c *gin.Context, id string) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     ChatCookie,
		Value:    id,
		Path:     "/chatbot",
		MaxAge:   int((24 * time.Hour).Seconds()),
		HttpOnly: true,
		Secure:   cc.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}
