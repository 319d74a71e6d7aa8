package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/Kamar-Folarin/github-analyzer/internal/activity"
	"github.com/Kamar-Folarin/github-analyzer/internal/api"
	"github.com/Kamar-Folarin/github-analyzer/internal/config"
	"github.com/Kamar-Folarin/github-analyzer/internal/dashboard"
	"github.com/Kamar-Folarin/github-analyzer/internal/db"
	"github.com/Kamar-Folarin/github-analyzer/internal/github"
	"github.com/Kamar-Folarin/github-analyzer/internal/history"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	logger.SetOutput(os.Stdout)

	// Load configuration with defaults
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.WithField("log_level", cfg.LogLevel).Warn("Unknown log level, using info")
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Recent-search storage; an unreachable backend leaves history in memory
	store, err := db.OpenHistoryStore(ctx, cfg.History.Backend, db.StoreOptions{
		PostgresURL:     cfg.DBConnectionString,
		RedisURL:        cfg.RedisURL,
		MigrateAttempts: 3,
		MigrateDelay:    5 * time.Second,
	})
	if err != nil {
		logger.WithError(err).WithField("backend", cfg.History.Backend).Warn("History backend unavailable, keeping search history in memory")
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	recent := history.NewRecentSearches(store, cfg.History, logger)
	if err := recent.Load(ctx); err == nil {
		logger.WithField("entries", len(recent.List())).Info("Search history loaded")
	}

	// Initialize services
	githubClient := github.NewClient(cfg.GitHub, logger)
	aggregator := activity.NewAggregator(githubClient, cfg.Analysis, logger)
	orchestrator := dashboard.NewOrchestrator(githubClient, aggregator, recent, cfg.Analysis, logger)
	apiHandler := api.NewHandler(orchestrator, logger)

	// Setup router with middleware
	router := api.SetupRouter(apiHandler, api.NewRateLimiter(cfg.RateLimit))
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
	}).Handler(router)

	// Create HTTP server. No write timeout: /api/v1/events streams until the client leaves.
	server := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     corsHandler,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Server shutdown failed: %v", err)
	}
	logger.Info("Server exited properly")
}
