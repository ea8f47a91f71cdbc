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

type WorkoutsHandler struct {
	service *usecase.WorkoutsService
}

func NewWorkoutsHandler(service *usecase.WorkoutsService) *WorkoutsHandler {
	return &WorkoutsHandler{service: service}
}

func (h *WorkoutsHandler) GetUserWorkouts(c *gin.Context) {
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

	workouts, err := h.service.GetUserWorkouts(c.Request.Context(), userID.(string), monthKey, time.Now())
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, dto.ToWorkoutResponses(workouts))
}

func (h *WorkoutsHandler) CreateWorkout(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req struct {
		Date      string           `json:"date"`
		Title     string           `json:"title" binding:"required"`
		Notes     string           `json:"notes"`
		Exercises []model.Exercise `json:"exercises"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	workout, err := h.service.CreateWorkout(c.Request.Context(), userID.(string), req.Date, req.Title, req.Notes, req.Exercises)
	if err != nil {
		if strings.Contains(err.Error(), "required") || strings.Contains(err.Error(), "date") {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Created(c, dto.ToWorkoutResponse(workout))
}

func (h *WorkoutsHandler) UpdateWorkout(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	workoutID := c.Param("id")
	if workoutID == "" {
		utils.BadRequest(c, "Missing workout ID")
		return
	}

	var req struct {
		Exercises []model.Exercise `json:"exercises"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	workout, err := h.service.UpdateExercises(c.Request.Context(), workoutID, userID.(string), req.Exercises)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFound(c, "Workout not found")
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, dto.ToWorkoutResponse(workout))
}

func (h *WorkoutsHandler) DeleteWorkout(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	workoutID := c.Param("id")
	if workoutID == "" {
		utils.BadRequest(c, "Missing workout ID")
		return
	}

	if err := h.service.DeleteWorkout(c.Request.Context(), workoutID, userID.(string)); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFound(c, "Workout not found")
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"message": "Workout deleted successfully"})
}
