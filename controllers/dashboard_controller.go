package controllers

import (
	"net/http"

	"tour-backend/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	stats services.StatsService
}

func NewDashboardController(stats services.StatsService) *DashboardController {
	return &DashboardController{stats: stats}
}

// GetStats handles GET /api/admin/stats. Counts that fail come back as
// zero, so the dashboard always renders.
func (ctrl *DashboardController) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.stats.Dashboard())
}
