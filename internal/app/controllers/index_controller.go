package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/campusconnect/internal/app/services"
	"github.com/yigit/campusconnect/internal/app/views"
)

// IndexController serves the landing page and the health probe
type IndexController struct{}

// NewIndexController creates a new IndexController
func NewIndexController() *IndexController {
	return &IndexController{}
}

// Index renders the landing page
func (ic *IndexController) Index(c *gin.Context) {
	views.Render(c, http.StatusOK, "index.html", "Home", services.Index(isAuthenticated(c)))
}

// Health reports liveness
func (ic *IndexController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
