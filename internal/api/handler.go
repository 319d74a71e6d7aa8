package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Kamar-Folarin/github-analyzer/internal/dashboard"
	apperrors "github.com/Kamar-Folarin/github-analyzer/internal/errors"
	"github.com/Kamar-Folarin/github-analyzer/internal/models"
	"github.com/Kamar-Folarin/github-analyzer/internal/stats"
)

// Dashboard is the orchestrator surface the HTTP API drives
type Dashboard interface {
	Search(ctx context.Context, username string) error
	ChangeWindow(ctx context.Context, window models.TimeWindow) error
	Refresh(ctx context.Context) error
	Snapshot() dashboard.State
	Notifications() []dashboard.Notification
	History() []string
	Export() (*dashboard.ExportDocument, string, error)
	Subscribe() (<-chan dashboard.Event, func())
}

type Handler struct {
	dashboard Dashboard
	logger    *logrus.Logger
}

func NewHandler(d Dashboard, logger *logrus.Logger) *Handler {
	return &Handler{
		dashboard: d,
		logger:    logger,
	}
}

// Search godoc
// @Summary Search a GitHub user
// @Description Fetch the profile, repositories and activity of a user and return the dashboard
// @Tags dashboard
// @Accept json
// @Produce json
// @Param request body SearchRequest true "Username to search"
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /search [post]
func (h *Handler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.dashboard.Search(c.Request.Context(), req.Username); err != nil {
		h.respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.dashboardResponse())
}

// Refresh godoc
// @Summary Refresh the current user
// @Description Repeat the search for the loaded user; does nothing when no user is loaded
// @Tags dashboard
// @Produce json
// @Success 200 {object} DashboardResponse
// @Failure 404 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /refresh [post]
func (h *Handler) Refresh(c *gin.Context) {
	if err := h.dashboard.Refresh(c.Request.Context()); err != nil {
		h.respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.dashboardResponse())
}

// ChangeWindow godoc
// @Summary Change the commit activity window
// @Description Recompute commit activity for 30days, 3months or 1year; ignored until a search has completed
// @Tags dashboard
// @Accept json
// @Produce json
// @Param request body WindowRequest true "Time window"
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} ErrorResponse
// @Router /window [put]
func (h *Handler) ChangeWindow(c *gin.Context) {
	var req WindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	window := models.TimeWindow(req.Window)
	if !window.Valid() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("invalid time window %q", req.Window)})
		return
	}

	if err := h.dashboard.ChangeWindow(c.Request.Context(), window); err != nil {
		h.respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.dashboardResponse())
}

// GetDashboard godoc
// @Summary Get the dashboard
// @Description Current dashboard state with summary statistics
// @Tags dashboard
// @Produce json
// @Success 200 {object} DashboardResponse
// @Router /dashboard [get]
func (h *Handler) GetDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboardResponse())
}

// ListRepositories godoc
// @Summary List repositories of the current user
// @Description Filter by name or description and sort by stars, updated, name or created
// @Tags dashboard
// @Produce json
// @Param q query string false "Case-insensitive filter"
// @Param sort query string false "Sort order" Enums(stars, updated, name, created) default(updated)
// @Success 200 {object} RepositoryListResponse
// @Router /repositories [get]
func (h *Handler) ListRepositories(c *gin.Context) {
	state := h.dashboard.Snapshot()
	repos := stats.FilterAndSort(state.Repositories, c.Query("q"), stats.ParseRepositorySort(c.Query("sort")))

	c.JSON(http.StatusOK, RepositoryListResponse{
		Data:  repos,
		Total: len(repos),
	})
}

// GetHistory godoc
// @Summary Recent searches
// @Description Logins of the most recent successful searches, newest first
// @Tags history
// @Produce json
// @Success 200 {object} HistoryResponse
// @Router /history [get]
func (h *Handler) GetHistory(c *gin.Context) {
	c.JSON(http.StatusOK, HistoryResponse{Data: h.dashboard.History()})
}

// GetNotifications godoc
// @Summary Recent notifications
// @Description Most recent notifications, newest first
// @Tags dashboard
// @Produce json
// @Success 200 {array} dashboard.Notification
// @Router /notifications [get]
func (h *Handler) GetNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboard.Notifications())
}

// Export godoc
// @Summary Export the current user's data
// @Description Download profile, repositories, commit activity and language statistics as JSON
// @Tags export
// @Produce json
// @Success 200 {object} dashboard.ExportDocument
// @Failure 404 {object} ErrorResponse
// @Router /export [get]
func (h *Handler) Export(c *gin.Context) {
	doc, filename, err := h.dashboard.Export()
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.IndentedJSON(http.StatusOK, doc)
}

// Events godoc
// @Summary Stream dashboard events
// @Description Server-Sent Events carrying state snapshots and notifications
// @Tags dashboard
// @Produce text/event-stream
// @Success 200 {object} dashboard.Event
// @Router /events [get]
func (h *Handler) Events(c *gin.Context) {
	events, unsubscribe := h.dashboard.Subscribe()
	defer unsubscribe()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	state := h.dashboard.Snapshot()
	c.SSEvent(string(dashboard.EventState), dashboard.Event{Type: dashboard.EventState, State: &state})
	c.Writer.Flush()

	ctx := c.Request.Context()
	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			c.SSEvent(string(event.Type), event)
			c.Writer.Flush()
		case <-ctx.Done():
			return
		}
	}
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

func (h *Handler) dashboardResponse() DashboardResponse {
	state := h.dashboard.Snapshot()
	return DashboardResponse{
		State:   state,
		Summary: stats.Summarize(state.User, state.Repositories, state.CommitActivity, state.CommitActivitySynthetic),
	}
}

func (h *Handler) respondWithError(c *gin.Context, err error) {
	status := statusFor(err)
	message := apperrors.MessageOf(err)

	entry := h.logger.WithError(err).WithFields(logrus.Fields{
		"path":   c.FullPath(),
		"status": status,
	})
	if status >= http.StatusInternalServerError {
		entry.Error("Request failed")
	} else {
		entry.Warn("Request rejected")
	}

	c.JSON(status, ErrorResponse{Error: message})
}

func statusFor(err error) int {
	switch apperrors.TypeOf(err) {
	case apperrors.ErrInvalidInput:
		return http.StatusBadRequest
	case apperrors.ErrNotFound:
		return http.StatusNotFound
	case apperrors.ErrRateLimit:
		return http.StatusTooManyRequests
	case apperrors.ErrUpstream:
		return http.StatusBadGateway
	case apperrors.ErrNoRepositories:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
