package handler

import (
	"main/repository"
	"main/services"
	"main/utils"
	"strings"

	"github.com/gin-gonic/gin"
)

type LogoutHandler struct {
	sessionRepo *repository.SessionRepo
}

func NewLogoutHandler(sessionRepo *repository.SessionRepo) *LogoutHandler {
	return &LogoutHandler{sessionRepo: sessionRepo}
}

func (h *LogoutHandler) Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		utils.Unauthorized(c, "Missing authorization token")
		return
	}
	accessToken := strings.TrimPrefix(authHeader, "Bearer ")

	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	// Body is optional; a missing refresh token only skips its blacklisting
	_ = c.ShouldBindJSON(&req)

	if err := services.BlacklistTokens(accessToken, req.RefreshToken); err != nil {
		utils.InternalError(c, "Failed to invalidate tokens")
		return
	}

	if sessionID, err := c.Cookie("session_id"); err == nil {
		if err := h.sessionRepo.EndSession(sessionID); err != nil {
			utils.InternalError(c, "Failed to end session")
			return
		}
		c.SetCookie("session_id", "", -1, "/", "", true, true)
	}

	utils.TrackAuthAttempt("success", "logout")
	utils.Success(c, gin.H{"message": "Logged out successfully"})
}
