package config

// AnalysisConfig holds commit aggregation configuration
type AnalysisConfig struct {
	MaxActiveRepos int
	DefaultWindow  string
	Batch          BatchConfig
}

// BatchConfig holds fan-out configuration for per-repository commit fetches
type BatchConfig struct {
	Workers int
}

// HistoryConfig holds recent-search storage configuration
type HistoryConfig struct {
	Backend string
	Key     string
	Limit   int
}

// RateLimitConfig holds inbound request limits for the HTTP API
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// DefaultAnalysisConfig returns the default analysis configuration
func DefaultAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{
		MaxActiveRepos: 5,
		DefaultWindow:  "30days",
		Batch: BatchConfig{
			Workers: 5,
		},
	}
}

// DefaultHistoryConfig returns the default history configuration
func DefaultHistoryConfig() *HistoryConfig {
	return &HistoryConfig{
		Backend: "postgres",
		Key:     "githubSearchHistory",
		Limit:   5,
	}
}

// DefaultRateLimitConfig returns the default rate limit configuration
func DefaultRateLimitConfig() *RateLimitConfig {
	return &RateLimitConfig{
		RequestsPerSecond: 2,
		Burst:             5,
	}
}
