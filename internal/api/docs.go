package api

import (
	_ "github.com/Kamar-Folarin/github-analyzer/docs"
	"github.com/Kamar-Folarin/github-analyzer/internal/dashboard"
	"github.com/Kamar-Folarin/github-analyzer/internal/models"
)

// SearchRequest is the body of POST /search
// @Description A GitHub login or profile URL
type SearchRequest struct {
	// GitHub login, optionally prefixed with @, or a profile URL
	Username string `json:"username" example:"octocat"`
}

// WindowRequest is the body of PUT /window
// @Description Commit activity window
type WindowRequest struct {
	Window string `json:"window" example:"3months" enums:"30days,3months,1year"`
}

// DashboardResponse is the dashboard state with its summary statistics
// @Description Dashboard state and summary
type DashboardResponse struct {
	State   dashboard.State `json:"state"`
	Summary models.Summary  `json:"summary"`
}

// RepositoryListResponse is a filtered, sorted repository list
// @Description Repositories of the current user
type RepositoryListResponse struct {
	Data  []models.Repository `json:"data"`
	Total int                 `json:"total" example:"42"`
}

// HistoryResponse lists recent searches, newest first
// @Description Recent searches
type HistoryResponse struct {
	Data []string `json:"data" example:"octocat,torvalds"`
}

// HealthResponse is returned by the health check
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// ErrorResponse represents an error response
// @Description Error response
type ErrorResponse struct {
	// Error message
	Error string `json:"error" example:"User not found"`
}
