package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title GitHub Activity Analyzer API
// @version 1.0
// @description API for analyzing the public activity of GitHub users
// @contact.name API Support
// @contact.url http://github.com/Kamar-Folarin
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// SetupRouter configures the API routes. Requests that reach the GitHub API
// go through limiter; reads of the current state do not.
func SetupRouter(h *Handler, limiter *RateLimiter) *gin.Engine {
	r := gin.Default()

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", h.Health)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", h.Health)
		v1.GET("/dashboard", h.GetDashboard)
		v1.GET("/repositories", h.ListRepositories)
		v1.GET("/history", h.GetHistory)
		v1.GET("/notifications", h.GetNotifications)
		v1.GET("/export", h.Export)
		v1.GET("/events", h.Events)

		limited := v1.Group("", limiter.Limit())
		{
			limited.POST("/search", h.Search)
			limited.POST("/refresh", h.Refresh)
			limited.PUT("/window", h.ChangeWindow)
		}
	}

	return r
}
