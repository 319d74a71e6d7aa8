package config

import "time"

// GitHubConfig holds GitHub-specific configuration
type GitHubConfig struct {
	APIBaseURL string
	UserAgent  string
	PerPage    int
	// Timeout of zero leaves the transport default in place.
	Timeout time.Duration
}

// DefaultGitHubConfig returns the default GitHub configuration
func DefaultGitHubConfig() *GitHubConfig {
	return &GitHubConfig{
		APIBaseURL: "https://api.github.com",
		UserAgent:  "github-analyzer/1.0",
		PerPage:    100,
	}
}
