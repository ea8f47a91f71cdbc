package middleware

import (
	"main/services"
	"main/utils"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupAuthTest(t *testing.T) *gin.Engine {
	t.Helper()
	os.Setenv("GO_ENV", "test")
	utils.InitJWT()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	router := setupAuthTest(t)

	tests := []struct {
		name       string
		authHeader func(t *testing.T) string
		wantStatus int
	}{
		{
			name:       "missing header",
			authHeader: func(t *testing.T) string { return "" },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed header",
			authHeader: func(t *testing.T) string { return "Token abc" },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "garbage token",
			authHeader: func(t *testing.T) string { return "Bearer not.a.jwt" },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "valid access token",
			authHeader: func(t *testing.T) string {
				token, err := services.GenerateToken("user-123")
				if err != nil {
					t.Fatalf("Failed to generate token: %v", err)
				}
				return "Bearer " + token
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "refresh token rejected for API access",
			authHeader: func(t *testing.T) string {
				token, err := services.GenerateRefreshToken("user-123")
				if err != nil {
					t.Fatalf("Failed to generate refresh token: %v", err)
				}
				return "Bearer " + token
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if header := tt.authHeader(t); header != "" {
				req.Header.Set("Authorization", header)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Status = %d, want %d (body: %s)", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}
