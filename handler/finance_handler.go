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

type FinanceHandler struct {
	service *usecase.FinanceService
}

func NewFinanceHandler(service *usecase.FinanceService) *FinanceHandler {
	return &FinanceHandler{service: service}
}

func (h *FinanceHandler) GetUserTransactions(c *gin.Context) {
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

	txs, err := h.service.GetUserTransactions(c.Request.Context(), userID.(string), monthKey, time.Now())
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, dto.ToTransactionResponses(txs))
}

func (h *FinanceHandler) CreateTransaction(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req struct {
		Amount     float64               `json:"amount" binding:"required"`
		Type       model.TransactionType `json:"type" binding:"required"`
		CategoryID string                `json:"category_id" binding:"required"`
		Date       *time.Time            `json:"date"`
		Note       string                `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	date := time.Time{}
	if req.Date != nil {
		date = *req.Date
	}

	tx, err := h.service.CreateTransaction(c.Request.Context(), userID.(string), req.Amount, req.Type, req.CategoryID, date, req.Note)
	if err != nil {
		if strings.Contains(err.Error(), "category not found") {
			utils.BadRequest(c, err.Error())
			return
		}
		if isValidationError(err) {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Created(c, dto.ToTransactionResponse(tx))
}

func (h *FinanceHandler) UpdateTransaction(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	txID := c.Param("id")
	if txID == "" {
		utils.BadRequest(c, "Missing transaction ID")
		return
	}

	var req struct {
		Amount     *float64               `json:"amount"`
		Type       *model.TransactionType `json:"type"`
		CategoryID *string                `json:"category_id"`
		Date       *time.Time             `json:"date"`
		Note       *string                `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	tx, err := h.service.UpdateTransaction(c.Request.Context(), txID, userID.(string), usecase.TransactionUpdate{
		Amount:     req.Amount,
		Type:       req.Type,
		CategoryID: req.CategoryID,
		Date:       req.Date,
		Note:       req.Note,
	})
	if err != nil {
		if strings.Contains(err.Error(), "transaction not found") {
			utils.NotFound(c, "Transaction not found")
			return
		}
		if strings.Contains(err.Error(), "category not found") || isValidationError(err) {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, dto.ToTransactionResponse(tx))
}

func (h *FinanceHandler) DeleteTransaction(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	txID := c.Param("id")
	if txID == "" {
		utils.BadRequest(c, "Missing transaction ID")
		return
	}

	if err := h.service.DeleteTransaction(c.Request.Context(), txID, userID.(string)); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFound(c, "Transaction not found")
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"message": "Transaction deleted successfully"})
}

func (h *FinanceHandler) GetUserCategories(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	categories, err := h.service.GetUserCategories(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, dto.ToCategoryResponses(categories))
}

func (h *FinanceHandler) CreateCategory(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req struct {
		Name  string `json:"name" binding:"required"`
		Color string `json:"color" binding:"required"`
		Icon  string `json:"icon" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	category, err := h.service.CreateCategory(c.Request.Context(), userID.(string), req.Name, req.Color, req.Icon)
	if err != nil {
		if isValidationError(err) {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Created(c, dto.ToCategoryResponse(category))
}

func (h *FinanceHandler) UpdateCategory(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	categoryID := c.Param("id")
	if categoryID == "" {
		utils.BadRequest(c, "Missing category ID")
		return
	}

	var req struct {
		Name  *string `json:"name"`
		Color *string `json:"color"`
		Icon  *string `json:"icon"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	category, err := h.service.UpdateCategory(c.Request.Context(), categoryID, userID.(string), usecase.CategoryUpdate{
		Name:  req.Name,
		Color: req.Color,
		Icon:  req.Icon,
	})
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFound(c, "Category not found")
			return
		}
		if isValidationError(err) {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, dto.ToCategoryResponse(category))
}

func (h *FinanceHandler) DeleteCategory(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	categoryID := c.Param("id")
	if categoryID == "" {
		utils.BadRequest(c, "Missing category ID")
		return
	}

	if err := h.service.DeleteCategory(c.Request.Context(), categoryID, userID.(string)); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFound(c, "Category not found")
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"message": "Category deleted successfully"})
}
