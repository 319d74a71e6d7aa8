package github

import (
	"context"
	"time"

	"github.com/Kamar-Folarin/github-analyzer/internal/models"
)

// UserService defines the profile and repository lookups a search needs
type UserService interface {
	// GetUser fetches the public profile of a login
	GetUser(ctx context.Context, username string) (*models.UserProfile, error)

	// ListRepositories fetches a single page of the user's repositories, most recently updated first
	ListRepositories(ctx context.Context, username string) ([]models.Repository, error)
}

// CommitService defines the commit lookups used for activity aggregation
type CommitService interface {
	// ListCommits fetches a single page of commits authored in [since, until]
	ListCommits(ctx context.Context, owner, name string, since, until time.Time) ([]models.Commit, error)
}

// API is the full remote surface of the analyzer
type API interface {
	UserService
	CommitService

	// RateLimit returns the rate-limit headers seen on the last response
	RateLimit() RateLimitInfo
}

var _ API = (*Client)(nil)
