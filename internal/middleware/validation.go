package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/yigit/campusconnect/internal/pkg/apperrors"
)

// BindForm decodes the query string or form body into form. Field rules are
// checked later by the services, so only malformed input fails here.
func BindForm(c *gin.Context, form interface{}) error {
	if err := c.ShouldBind(form); err != nil {
		return apperrors.NewBadRequestError("Invalid form data: " + err.Error())
	}
	return nil
}
