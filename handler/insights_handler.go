package handler

import (
	"main/usecase"
	"main/utils"
	"time"

	"github.com/gin-gonic/gin"
)

type InsightsHandler struct {
	service *usecase.InsightsService
}

func NewInsightsHandler(service *usecase.InsightsService) *InsightsHandler {
	return &InsightsHandler{service: service}
}

// GetMonthlyInsights builds the monthly report for the requested month,
// defaulting to the current month when none is given.
func (h *InsightsHandler) GetMonthlyInsights(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	monthKey := c.Query("month")
	if monthKey != "" && !utils.ValidMonthKey(monthKey) {
		utils.BadRequest(c, "Month must be in YYYY-MM format")
		return
	}

	insights, err := h.service.MonthlyInsights(c.Request.Context(), userID.(string), monthKey, time.Now())
	if err != nil {
		utils.InternalError(c, "Failed to build monthly insights")
		return
	}

	utils.Success(c, insights)
}
