package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Kamar-Folarin/github-analyzer/internal/config"
	"github.com/Kamar-Folarin/github-analyzer/internal/dashboard"
)

func setupTestRoutes(t *testing.T) (*gin.Engine, *MockDashboard) {
	gin.SetMode(gin.TestMode)

	mockDashboard := new(MockDashboard)
	logger := logrus.New()
	logger.SetOutput(bytes.NewBuffer(nil)) // Discard logs during tests

	handler := NewHandler(mockDashboard, logger)
	router := SetupRouter(handler, NewRateLimiter(config.DefaultRateLimitConfig()))

	return router, mockDashboard
}

func TestRouteRegistration(t *testing.T) {
	router, mockDashboard := setupTestRoutes(t)
	mockDashboard.On("Snapshot").Return(dashboard.State{Phase: dashboard.PhaseIdle})
	mockDashboard.On("History").Return([]string{})
	mockDashboard.On("Notifications").Return([]dashboard.Notification{})
	mockDashboard.On("Refresh", mock.Anything).Return(nil)

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{
			name:           "health",
			method:         "GET",
			path:           "/health",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "versioned health",
			method:         "GET",
			path:           "/api/v1/health",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "metrics",
			method:         "GET",
			path:           "/metrics",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "dashboard",
			method:         "GET",
			path:           "/api/v1/dashboard",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "repositories",
			method:         "GET",
			path:           "/api/v1/repositories",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "history",
			method:         "GET",
			path:           "/api/v1/history",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "notifications",
			method:         "GET",
			path:           "/api/v1/notifications",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "search without body",
			method:         "POST",
			path:           "/api/v1/search",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "refresh",
			method:         "POST",
			path:           "/api/v1/refresh",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "window without body",
			method:         "PUT",
			path:           "/api/v1/window",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "swagger",
			method:         "GET",
			path:           "/swagger/doc.json",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown route",
			method:         "GET",
			path:           "/api/v1/unknown",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, nil)
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
