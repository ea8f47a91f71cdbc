package handler

import (
	"main/usecase"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupInsightsHandlerTest(withUser bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	h := NewInsightsHandler(usecase.NewInsightsService(nil, nil, nil, nil))
	router.GET("/api/insights/monthly", func(c *gin.Context) {
		if withUser {
			c.Set("user_id", "user-123")
		}
		h.GetMonthlyInsights(c)
	})
	return router
}

func TestGetMonthlyInsightsValidation(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		withUser   bool
		wantStatus int
	}{
		{
			name:       "missing user context",
			url:        "/api/insights/monthly",
			withUser:   false,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed month key",
			url:        "/api/insights/monthly?month=2026-1",
			withUser:   true,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "month out of range",
			url:        "/api/insights/monthly?month=2026-13",
			withUser:   true,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupInsightsHandlerTest(tt.withUser)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Status = %d, want %d (body: %s)", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}
