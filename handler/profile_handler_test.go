package handler

import (
	"context"
	"main/model"
	"main/repository"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// The profile lookup must accept the request context like every other
// ctx-taking repository read.
var _ func(context.Context, string) (*model.User, error) = (&repository.UsersRepo{}).FindUser

func TestGetProfileRequiresUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	h := NewProfileHandler(&repository.UsersRepo{})
	router.GET("/api/user/profile", h.GetProfile)

	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}
