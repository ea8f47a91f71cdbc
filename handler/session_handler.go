package handler

import (
	"main/model"
	"main/repository"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	sessionRepo *repository.SessionRepo
}

func NewSessionHandler(sessionRepo *repository.SessionRepo) *SessionHandler {
	return &SessionHandler{sessionRepo: sessionRepo}
}

type sessionResponse struct {
	SessionID      string `json:"session_id"`
	DisplayName    string `json:"display_name"`
	DeviceInfo     string `json:"device_info"`
	IPAddress      string `json:"ip_address"`
	CreatedAt      string `json:"created_at"`
	LastActivityAt string `json:"last_activity_at"`
	Current        bool   `json:"current"`
}

func (h *SessionHandler) GetActiveSessions(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	currentID, _ := c.Cookie("session_id")

	sessions, err := h.sessionRepo.GetUserActiveSessions(userID.(string))
	if err != nil {
		utils.InternalError(c, "Failed to fetch sessions")
		return
	}

	out := make([]sessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, toSessionResponse(s, currentID))
	}
	utils.Success(c, out)
}

func (h *SessionHandler) LogoutAllSessions(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	ended, err := h.sessionRepo.EndAllUserSessions(userID.(string))
	if err != nil {
		utils.InternalError(c, "Failed to end sessions")
		return
	}

	c.SetCookie("session_id", "", -1, "/", "", true, true)
	utils.Success(c, gin.H{
		"message":        "All sessions ended",
		"sessions_ended": ended,
	})
}

func toSessionResponse(s *model.Session, currentID string) sessionResponse {
	return sessionResponse{
		SessionID:      s.SessionID,
		DisplayName:    s.DisplayName,
		DeviceInfo:     s.DeviceInfo,
		IPAddress:      s.IPAddress,
		CreatedAt:      s.CreatedAt.Format("2006-01-02 15:04:05"),
		LastActivityAt: s.LastActivityAt.Format("2006-01-02 15:04:05"),
		Current:        s.SessionID == currentID,
	}
}
