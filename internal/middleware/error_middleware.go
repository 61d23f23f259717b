package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/campusconnect/internal/app/views"
	"github.com/yigit/campusconnect/internal/pkg/apperrors"
)

// StatusForError maps an error to the status of the error page
func StatusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrTransport), errors.Is(err, apperrors.ErrUpstreamStatus), errors.Is(err, apperrors.ErrDecode):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// HandlePageError renders the error page for err
func HandlePageError(c *gin.Context, err error) {
	status := StatusForError(err)
	message := "Something went wrong. Please try again."
	switch status {
	case http.StatusBadRequest:
		message = "The request could not be understood."
		var custom *apperrors.CustomError
		if errors.As(err, &custom) && custom.Message != "" {
			message = custom.Message
		}
	case http.StatusUnauthorized:
		message = "Please log in to continue."
	case http.StatusNotFound:
		message = "Oops! Page not found"
	case http.StatusBadGateway:
		message = "The CampusConnect service is unavailable right now."
	}
	views.Render(c, status, "error.html", "Error", views.ErrorData{Status: status, Message: message})
}

// ErrorHandler renders the error page for errors attached with c.Error when
// the handler wrote nothing itself.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		HandlePageError(c, c.Errors.Last().Err)
	}
}

// NotFound renders the 404 page for unmatched routes
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		views.Render(c, http.StatusNotFound, "not_found.html", "Not Found", nil)
	}
}
