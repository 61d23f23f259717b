package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/campusconnect/internal/app/models/dto"
	"github.com/yigit/campusconnect/internal/app/services"
	"github.com/yigit/campusconnect/internal/app/views"
	"github.com/yigit/campusconnect/internal/middleware"
)

// ProfileController handles the profile editor
type ProfileController struct {
	profileService services.ProfileService
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService services.ProfileService) *ProfileController {
	return &ProfileController{profileService: profileService}
}

// Show renders the editor with the loaded profile
func (pc *ProfileController) Show(c *gin.Context) {
	view := pc.profileService.Load(c.Request.Context())
	views.Render(c, http.StatusOK, "profile.html", "Profile", view, view.Toasts...)
}

// Save creates or updates the profile
func (pc *ProfileController) Save(c *gin.Context) {
	var form dto.ProfileForm
	if err := middleware.BindForm(c, &form); err != nil {
		_ = c.Error(err)
		return
	}

	view := pc.profileService.Save(c.Request.Context(), form)
	views.Render(c, statusFor(view.Errors), "profile.html", "Profile", view, view.Toasts...)
}
