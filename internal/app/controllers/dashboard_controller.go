package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/educonnect/backend/internal/app/models/dto"
	"github.com/educonnect/backend/internal/app/services"
	"github.com/educonnect/backend/internal/middleware"
)

// DashboardController serves the entity count summary
type DashboardController struct {
	dashboardService *services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService *services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetDashboard retrieves entity counts
// @Summary Get dashboard counts
// @Description Retrieves the current number of students, instructors, courses and sections
// @Tags dashboard
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.DashboardResponse} "Dashboard retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	dashboard, err := c.dashboardService.GetDashboard(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dashboard,
		Timestamp: time.Now(),
	})
}
