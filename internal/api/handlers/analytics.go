package handlers

import (
	"net/http"

	"waste-backend/internal/services"
	"waste-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsService *services.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetAnalytics retrieves the waste distribution and recyclable split
func (h *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	data, err := h.analyticsService.GetAnalytics()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve analytics data", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Analytics data retrieved successfully", data)
}
