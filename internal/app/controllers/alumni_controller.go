package controllers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yigit/campusconnect/internal/app/models/dto"
	"github.com/yigit/campusconnect/internal/app/services"
	"github.com/yigit/campusconnect/internal/app/views"
	"github.com/yigit/campusconnect/internal/middleware"
	"github.com/yigit/campusconnect/internal/pkg/apperrors"
)

// AlumniController handles the alumni directory
type AlumniController struct {
	alumniService services.AlumniService
	flash         *middleware.Flash
}

// NewAlumniController creates a new AlumniController
func NewAlumniController(alumniService services.AlumniService, flash *middleware.Flash) *AlumniController {
	return &AlumniController{
		alumniService: alumniService,
		flash:         flash,
	}
}

// Index lists or searches alumni depending on the query string
func (ac *AlumniController) Index(c *gin.Context) {
	var filter dto.AlumniSearchForm
	if err := middleware.BindForm(c, &filter); err != nil {
		_ = c.Error(err)
		return
	}

	dir := ac.alumniService.Directory(c.Request.Context(), filter)
	views.Render(c, http.StatusOK, "alumni.html", "Alumni", dir, dir.Toasts...)
}

// Connect sends a connection request and returns to the same directory page
func (ac *AlumniController) Connect(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		_ = c.Error(apperrors.NewBadRequestError("Invalid alumni ID"))
		return
	}

	var filter dto.AlumniSearchForm
	_ = middleware.BindForm(c, &filter)

	toast := ac.alumniService.Connect(c.Request.Context(), id)
	ac.flash.Set(c, toast)
	c.Redirect(http.StatusSeeOther, directoryURL(filter))
}

func directoryURL(filter dto.AlumniSearchForm) string {
	q := url.Values{}
	if filter.Keyword != "" {
		q.Set("keyword", filter.Keyword)
	}
	if filter.Company != "" {
		q.Set("company", filter.Company)
	}
	if filter.Page > 1 {
		q.Set("page", strconv.Itoa(filter.Page))
	}
	if len(q) == 0 {
		return "/alumni"
	}
	return "/alumni?" + q.Encode()
}
