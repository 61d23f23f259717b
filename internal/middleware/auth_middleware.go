package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/campusconnect/internal/app/models/dto"
	"github.com/yigit/campusconnect/internal/session"
)

// LoginPath is where RequireSession sends signed-out visitors
const LoginPath = "/login"

// AuthMiddleware attaches the cookie-backed session to each request
type AuthMiddleware struct {
	sealer *session.Sealer
	opts   session.CookieOptions
	flash  *Flash
	logger zerolog.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(sealer *session.Sealer, opts session.CookieOptions, flash *Flash, logger zerolog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		sealer: sealer,
		opts:   opts,
		flash:  flash,
		logger: logger,
	}
}

// LoadSession reads the session cookie once and stores the session in the
// request context, where the API client and views pick it up.
func (m *AuthMiddleware) LoadSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		store := session.NewCookieStore(c.Writer, c.Request, m.sealer, m.opts)
		sess, err := session.New(store)
		if err != nil {
			m.logger.Warn().Err(err).Msg("Failed to load session")
		}
		c.Request = c.Request.WithContext(session.WithSession(c.Request.Context(), sess))
		c.Next()
	}
}

// RequireSession redirects signed-out visitors to the login page
func (m *AuthMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess := SessionFrom(c); sess != nil && sess.IsAuthenticated() {
			c.Next()
			return
		}

		m.logger.Debug().Str("path", c.Request.URL.Path).Msg("Redirecting signed-out visitor")
		if m.flash != nil {
			m.flash.Set(c, dto.ErrorToast("Authentication required", "Please log in to continue."))
		}
		c.Redirect(http.StatusSeeOther, LoginPath)
		c.Abort()
	}
}

// SessionFrom returns the session attached by LoadSession, or nil
func SessionFrom(c *gin.Context) *session.Session {
	return session.FromContext(c.Request.Context())
}
