package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/campusconnect/internal/app/models/dto"
	"github.com/yigit/campusconnect/internal/app/services"
	"github.com/yigit/campusconnect/internal/app/views"
	"github.com/yigit/campusconnect/internal/middleware"
)

// ForumController handles the discussion forum
type ForumController struct {
	forumService services.ForumService
}

// NewForumController creates a new ForumController
func NewForumController(forumService services.ForumService) *ForumController {
	return &ForumController{forumService: forumService}
}

// Index renders the post list
func (fc *ForumController) Index(c *gin.Context) {
	view := fc.forumService.Load(c.Request.Context())
	views.Render(c, http.StatusOK, "forum.html", "Forum", view, view.Toasts...)
}

// Create publishes a post. A successful create renders the refreshed list
// directly so the list is fetched exactly once.
func (fc *ForumController) Create(c *gin.Context) {
	var form dto.PostForm
	if err := middleware.BindForm(c, &form); err != nil {
		_ = c.Error(err)
		return
	}

	view := fc.forumService.CreatePost(c.Request.Context(), form)
	if view.Created {
		views.Render(c, http.StatusOK, "forum.html", "Forum", view, view.Toasts...)
		return
	}

	// keep the typed form and show the current posts under it
	listing := fc.forumService.Load(c.Request.Context())
	listing.Form = view.Form
	listing.Errors = view.Errors
	toasts := append(view.Toasts, listing.Toasts...)
	views.Render(c, statusFor(view.Errors), "forum.html", "Forum", listing, toasts...)
}
