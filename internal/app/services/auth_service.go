package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/yigit/campusconnect/internal/app/models/dto"
	"github.com/yigit/campusconnect/internal/app/models/dto/enums"
	"github.com/yigit/campusconnect/internal/pkg/validation"
	"github.com/yigit/campusconnect/internal/session"
)

// Redirect targets after auth actions
const (
	LoginSuccessPath    = "/dashboard"
	RegisterSuccessPath = "/login"
	LogoutPath          = "/"
)

// AuthResult is the outcome of a login, registration or logout
type AuthResult struct {
	Success  bool
	Redirect string
	Toast    dto.Toast
	Errors   validation.FieldErrors
}

// AuthService handles authentication operations
type AuthService struct {
	api    AuthAPI
	logger zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(api AuthAPI, logger zerolog.Logger) *AuthService {
	return &AuthService{
		api:    api,
		logger: logger,
	}
}

// Login validates the form, exchanges the credentials for a token and marks
// sess authenticated when one comes back.
func (s *AuthService) Login(ctx context.Context, sess *session.Session, form dto.LoginForm) AuthResult {
	if err := validation.Struct(&form); err != nil {
		return s.invalid(err, "Login failed")
	}

	resp, err := s.api.Login(ctx, dto.LoginRequest{Email: form.Email, Password: form.Password})
	if err != nil {
		return AuthResult{Toast: ToastForError(s.logger, err, "Error", "Something went wrong. Please try again.")}
	}
	if resp == nil || resp.Token == "" {
		s.logger.Info().Str("email", form.Email).Msg("Login rejected")
		return AuthResult{Toast: dto.ErrorToast("Login failed", "Invalid credentials. Please try again.")}
	}

	if err := sess.MarkAuthenticated(resp.Token); err != nil {
		return AuthResult{Toast: ToastForError(s.logger, err, "Error", "Could not store your session. Please try again.")}
	}

	s.logger.Info().Str("email", form.Email).Msg("User logged in")
	return AuthResult{
		Success:  true,
		Redirect: LoginSuccessPath,
		Toast:    dto.SuccessToast("Welcome back!", "You have successfully logged in."),
	}
}

// Register creates an account and sends the user to the login page
func (s *AuthService) Register(ctx context.Context, form dto.RegisterForm) AuthResult {
	form.Role = string(enums.ParseRole(form.Role))
	if err := validation.Struct(&form); err != nil {
		return s.invalid(err, "Registration failed")
	}

	if err := s.api.Register(ctx, form.ToRequest()); err != nil {
		return AuthResult{Toast: ToastForError(s.logger, err, "Registration failed", "Unable to create your account. Please try again.")}
	}

	s.logger.Info().Str("email", form.Email).Str("role", form.Role).Msg("User registered")
	return AuthResult{
		Success:  true,
		Redirect: RegisterSuccessPath,
		Toast:    dto.SuccessToast("Account created!", "You can now log in with your new account."),
	}
}

// Logout clears sess. The user is signed out even if the store fails.
func (s *AuthService) Logout(sess *session.Session) AuthResult {
	if err := sess.Clear(); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to clear stored session")
	}
	return AuthResult{
		Success:  true,
		Redirect: LogoutPath,
		Toast:    dto.SuccessToast("Signed out", "See you next time."),
	}
}

func (s *AuthService) invalid(err error, title string) AuthResult {
	fields, _ := err.(validation.FieldErrors)
	return AuthResult{
		Toast:  ToastForError(s.logger, err, title, "Please check the highlighted fields."),
		Errors: fields,
	}
}
