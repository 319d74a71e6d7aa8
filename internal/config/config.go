package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port               string
	LogLevel           string
	GitHub             *GitHubConfig
	Analysis           *AnalysisConfig
	History            *HistoryConfig
	RateLimit          *RateLimitConfig
	DBConnectionString string
	RedisURL           string
}

func Load() (*Config, error) {
	github := DefaultGitHubConfig()
	github.APIBaseURL = getEnv("GITHUB_API_BASE_URL", github.APIBaseURL)
	github.UserAgent = getEnv("GITHUB_USER_AGENT", github.UserAgent)

	perPage, err := getIntEnv("GITHUB_PER_PAGE", github.PerPage)
	if err != nil {
		return nil, err
	}
	github.PerPage = perPage

	timeoutSeconds, err := getIntEnv("GITHUB_TIMEOUT_SECONDS", 0)
	if err != nil {
		return nil, err
	}
	github.Timeout = time.Duration(timeoutSeconds) * time.Second

	analysis := DefaultAnalysisConfig()
	if analysis.MaxActiveRepos, err = getPositiveIntEnv("MAX_ACTIVE_REPOS", analysis.MaxActiveRepos); err != nil {
		return nil, err
	}
	if analysis.Batch.Workers, err = getPositiveIntEnv("COMMIT_FETCH_WORKERS", analysis.Batch.Workers); err != nil {
		return nil, err
	}
	analysis.DefaultWindow = getEnv("DEFAULT_TIME_WINDOW", analysis.DefaultWindow)

	history := DefaultHistoryConfig()
	history.Backend = getEnv("HISTORY_BACKEND", history.Backend)
	history.Key = getEnv("HISTORY_KEY", history.Key)
	if history.Limit, err = getIntEnv("HISTORY_LIMIT", history.Limit); err != nil {
		return nil, err
	}

	rateLimit := DefaultRateLimitConfig()
	rps, err := strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", strconv.FormatFloat(rateLimit.RequestsPerSecond, 'f', -1, 64)), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_RPS: %w", err)
	}
	rateLimit.RequestsPerSecond = rps
	if rateLimit.Burst, err = getIntEnv("RATE_LIMIT_BURST", rateLimit.Burst); err != nil {
		return nil, err
	}

	return &Config{
		Port:               getEnv("PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		GitHub:             github,
		Analysis:           analysis,
		History:            history,
		RateLimit:          rateLimit,
		DBConnectionString: getEnv("DB_CONNECTION_STRING", ""),
		RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379/0"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntEnv(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getPositiveIntEnv(key string, defaultValue int) (int, error) {
	n, err := getIntEnv(key, defaultValue)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive, got %d", key, n)
	}
	return n, nil
}
