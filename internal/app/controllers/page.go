package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/campusconnect/internal/middleware"
	"github.com/yigit/campusconnect/internal/pkg/validation"
)

// statusFor picks the status of a re-rendered form
func statusFor(errs validation.FieldErrors) int {
	if len(errs) > 0 {
		return http.StatusUnprocessableEntity
	}
	return http.StatusOK
}

// isAuthenticated reports whether the request carries a signed-in session
func isAuthenticated(c *gin.Context) bool {
	sess := middleware.SessionFrom(c)
	return sess != nil && sess.IsAuthenticated()
}
