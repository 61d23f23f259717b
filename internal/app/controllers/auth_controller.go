package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/campusconnect/internal/app/models/dto"
	"github.com/yigit/campusconnect/internal/app/models/dto/enums"
	"github.com/yigit/campusconnect/internal/app/services"
	"github.com/yigit/campusconnect/internal/app/views"
	"github.com/yigit/campusconnect/internal/middleware"
	"github.com/yigit/campusconnect/internal/pkg/validation"
)

// LoginData is the login page model
type LoginData struct {
	Form   dto.LoginForm
	Errors validation.FieldErrors
}

// RegisterData is the registration page model
type RegisterData struct {
	Form   dto.RegisterForm
	Roles  []enums.RoleType
	Errors validation.FieldErrors
}

// AuthController handles authentication-related HTTP requests
type AuthController struct {
	authService *services.AuthService
	flash       *middleware.Flash
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, flash *middleware.Flash) *AuthController {
	return &AuthController{
		authService: authService,
		flash:       flash,
	}
}

// ShowLogin renders the login form
func (ac *AuthController) ShowLogin(c *gin.Context) {
	if isAuthenticated(c) {
		c.Redirect(http.StatusSeeOther, services.LoginSuccessPath)
		return
	}
	views.Render(c, http.StatusOK, "login.html", "Login", LoginData{})
}

// Login handles the login form
func (ac *AuthController) Login(c *gin.Context) {
	var form dto.LoginForm
	if err := middleware.BindForm(c, &form); err != nil {
		_ = c.Error(err)
		return
	}

	res := ac.authService.Login(c.Request.Context(), middleware.SessionFrom(c), form)
	if res.Success {
		ac.flash.Set(c, res.Toast)
		c.Redirect(http.StatusSeeOther, res.Redirect)
		return
	}

	form.Password = ""
	views.Render(c, statusFor(res.Errors), "login.html", "Login", LoginData{Form: form, Errors: res.Errors}, res.Toast)
}

// ShowRegister renders the registration form
func (ac *AuthController) ShowRegister(c *gin.Context) {
	views.Render(c, http.StatusOK, "register.html", "Register", RegisterData{
		Form:  dto.RegisterForm{Role: string(enums.RoleStudent)},
		Roles: enums.Roles(),
	})
}

// Register handles the registration form
func (ac *AuthController) Register(c *gin.Context) {
	var form dto.RegisterForm
	if err := middleware.BindForm(c, &form); err != nil {
		_ = c.Error(err)
		return
	}

	res := ac.authService.Register(c.Request.Context(), form)
	if res.Success {
		ac.flash.Set(c, res.Toast)
		c.Redirect(http.StatusSeeOther, res.Redirect)
		return
	}

	form.Password = ""
	views.Render(c, statusFor(res.Errors), "register.html", "Register", RegisterData{Form: form, Roles: enums.Roles(), Errors: res.Errors}, res.Toast)
}

// Logout clears the session cookie and returns to the landing page
func (ac *AuthController) Logout(c *gin.Context) {
	res := ac.authService.Logout(middleware.SessionFrom(c))
	ac.flash.Set(c, res.Toast)
	c.Redirect(http.StatusSeeOther, res.Redirect)
}
