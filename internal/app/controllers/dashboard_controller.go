package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/campusconnect/internal/app/services"
	"github.com/yigit/campusconnect/internal/app/views"
)

// DashboardController renders the signed-in home page
type DashboardController struct {
	dashboardService *services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService *services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// Show renders the dashboard
func (dc *DashboardController) Show(c *gin.Context) {
	view := dc.dashboardService.Load(c.Request.Context())
	views.Render(c, http.StatusOK, "dashboard.html", "Dashboard", view, view.Toasts...)
}
