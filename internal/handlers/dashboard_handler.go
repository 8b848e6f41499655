package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crimemap/internal/services"
)

// DashboardHandler serves the aggregated dashboard payload.
type DashboardHandler struct {
	dashboardService services.DashboardServicer
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService services.DashboardServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboard handles the dashboard request
// @Summary     Get dashboard statistics
// @Description Get monitoring records with aggregated statistics, optionally filtered by category slug. An unknown slug returns the unfiltered view.
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Param       category query string false "Category slug filter"
// @Success     200 {object} services.DashboardData "Dashboard payload"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	categorySlug := c.Query("category")

	data, err := h.dashboardService.GetDashboard(categorySlug)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, data)
}
