package handler

import (
	"errors"
	"main/middleware"
	"main/model"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

const MaxActiveSessions = 5

type LoginHandler struct {
	service     *usecase.UsersService
	sessionRepo *repository.SessionRepo
}

func NewLoginHandler(service *usecase.UsersService, sessionRepo *repository.SessionRepo) *LoginHandler {
	return &LoginHandler{service: service, sessionRepo: sessionRepo}
}

func (h *LoginHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackAuthAttempt("failure", "login")
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	user, err := h.service.Authenticate(req.Username, req.Password)
	if err != nil {
		utils.TrackAuthAttempt("failure", "login")
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			utils.Unauthorized(c, "Invalid credentials")
			return
		}
		utils.InternalError(c, "Failed to log in")
		return
	}

	// Cap concurrent sessions per user, evicting the stalest one
	count, err := h.sessionRepo.CountActiveSessions(user.UserID)
	if err != nil {
		utils.TrackAuthAttempt("failure", "login")
		utils.InternalError(c, "Failed to check active sessions")
		return
	}
	if count >= MaxActiveSessions {
		if err := h.sessionRepo.EndLeastActiveSession(user.UserID); err != nil {
			utils.TrackAuthAttempt("failure", "login")
			utils.InternalError(c, "Failed to manage sessions")
			return
		}
	}

	accessToken, err := services.GenerateToken(user.UserID)
	if err != nil {
		utils.TrackAuthAttempt("failure", "login")
		utils.InternalError(c, "Failed to generate token")
		return
	}

	refreshToken, err := services.GenerateRefreshToken(user.UserID)
	if err != nil {
		utils.TrackAuthAttempt("failure", "login")
		utils.InternalError(c, "Failed to generate refresh token")
		return
	}

	if err := middleware.CreateSession(c, user.UserID, h.sessionRepo); err != nil {
		utils.TrackAuthAttempt("failure", "login")
		utils.InternalError(c, "Failed to create session")
		return
	}

	if active, err := h.sessionRepo.CountActiveSessions(user.UserID); err == nil {
		utils.UpdateActiveSessions(float64(active))
	}

	utils.TrackAuthAttempt("success", "login")
	utils.Success(c, gin.H{
		"token":         accessToken,
		"refresh_token": refreshToken,
		"user_id":       user.UserID,
		"username":      user.Username,
	})
}
