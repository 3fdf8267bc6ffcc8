package handlers

import (
	"net/http"

	"waste-backend/internal/services"
	"waste-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboard retrieves the dashboard summary
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	data, err := h.dashboardService.GetDashboard()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve dashboard data", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Dashboard data retrieved successfully", data)
}
