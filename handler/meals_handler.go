package handler

import (
	"main/dto"
	"main/model"
	"main/usecase"
	"main/utils"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

type MealsHandler struct {
	service *usecase.MealsService
}

func NewMealsHandler(service *usecase.MealsService) *MealsHandler {
	return &MealsHandler{service: service}
}

func (h *MealsHandler) GetUserMeals(c *gin.Context) {
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

	meals, err := h.service.GetUserMeals(c.Request.Context(), userID.(string), monthKey, time.Now())
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, dto.ToMealResponses(meals))
}

func (h *MealsHandler) CreateMeal(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req struct {
		Date  string           `json:"date" binding:"required"`
		Type  model.MealType   `json:"type" binding:"required"`
		Notes string           `json:"notes"`
		Items []model.MealItem `json:"items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	meal, err := h.service.CreateMeal(c.Request.Context(), userID.(string), req.Date, req.Type, req.Notes, req.Items)
	if err != nil {
		if isValidationError(err) {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Created(c, dto.ToMealResponse(meal))
}

func (h *MealsHandler) UpdateMeal(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	mealID := c.Param("id")
	if mealID == "" {
		utils.BadRequest(c, "Missing meal ID")
		return
	}

	var req struct {
		Date  *string          `json:"date"`
		Type  *model.MealType  `json:"type"`
		Notes *string          `json:"notes"`
		Items []model.MealItem `json:"items"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	meal, err := h.service.UpdateMeal(c.Request.Context(), mealID, userID.(string), usecase.MealUpdate{
		Date:  req.Date,
		Type:  req.Type,
		Notes: req.Notes,
		Items: req.Items,
	})
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFound(c, "Meal not found")
			return
		}
		if isValidationError(err) {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, dto.ToMealResponse(meal))
}

func (h *MealsHandler) DeleteMeal(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	mealID := c.Param("id")
	if mealID == "" {
		utils.BadRequest(c, "Missing meal ID")
		return
	}

	if err := h.service.DeleteMeal(c.Request.Context(), mealID, userID.(string)); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFound(c, "Meal not found")
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"message": "Meal deleted successfully"})
}

// isValidationError distinguishes bad input from store failures
func isValidationError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "required") ||
		strings.Contains(msg, "invalid") ||
		strings.Contains(msg, "must") ||
		strings.Contains(msg, "format") ||
		strings.Contains(msg, "missing") ||
		strings.Contains(msg, "negative") ||
		strings.Contains(msg, "positive") ||
		strings.Contains(msg, "empty") ||
		strings.Contains(msg, "no fields")
}
