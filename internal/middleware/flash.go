package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/campusconnect/internal/app/models/dto"
	"github.com/yigit/campusconnect/internal/app/views"
	"github.com/yigit/campusconnect/internal/session"
)

const flashCookie = "cc_flash"

// Flash carries toasts across one redirect in a sealed, one-shot cookie
type Flash struct {
	sealer *session.Sealer
	secure bool
	logger zerolog.Logger
}

// NewFlash creates a Flash
func NewFlash(sealer *session.Sealer, secure bool, logger zerolog.Logger) *Flash {
	return &Flash{sealer: sealer, secure: secure, logger: logger}
}

// Set queues toasts for the next page view
func (f *Flash) Set(c *gin.Context, toasts ...dto.Toast) {
	if len(toasts) == 0 {
		return
	}
	payload, err := json.Marshal(toasts)
	if err != nil {
		f.logger.Warn().Err(err).Msg("Failed to encode flash")
		return
	}
	value, err := f.sealer.Seal(payload)
	if err != nil {
		f.logger.Warn().Err(err).Msg("Failed to seal flash")
		return
	}
	http.SetCookie(c.Writer, f.cookie(value, 0))
}

// Middleware pops the flash cookie into the gin context for views.NewPage
func (f *Flash) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Request.Cookie(flashCookie)
		if err == nil {
			http.SetCookie(c.Writer, f.cookie("", -1))
			if plain, err := f.sealer.Open(cookie.Value); err == nil {
				var toasts []dto.Toast
				if json.Unmarshal(plain, &toasts) == nil {
					c.Set(views.FlashKey, toasts)
				}
			}
		}
		c.Next()
	}
}

func (f *Flash) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     flashCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   f.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
