package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Kamar-Folarin/github-analyzer/internal/config"
	"github.com/Kamar-Folarin/github-analyzer/internal/metrics"
	"github.com/Kamar-Folarin/github-analyzer/internal/models"
)

// RateLimitInfo holds the rate limit headers of the last response
type RateLimitInfo struct {
	Limit     int
	Remaining int
	ResetTime time.Time
}

// Client is a read-only client for the public GitHub REST API. Every call is a
// single round trip: no retries and no caching.
type Client struct {
	client    *http.Client
	baseURL   string
	userAgent string
	perPage   int
	logger    *logrus.Logger

	mu            sync.Mutex
	rateLimitInfo RateLimitInfo
}

// ClientOption allows configuring the GitHub client
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.client = httpClient
	}
}

// WithBaseURL points the client at another API root, e.g. a test server
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// NewClient creates a new GitHub client from configuration and options
func NewClient(cfg *config.GitHubConfig, logger *logrus.Logger, opts ...ClientOption) *Client {
	if cfg == nil {
		cfg = config.DefaultGitHubConfig()
	}

	httpClient := &http.Client{}
	if cfg.Timeout > 0 {
		httpClient.Timeout = cfg.Timeout
	}

	client := &Client{
		client:    httpClient,
		baseURL:   strings.TrimRight(cfg.APIBaseURL, "/"),
		userAgent: cfg.UserAgent,
		perPage:   cfg.PerPage,
		logger:    logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// RateLimit returns the rate limit information of the most recent response
func (c *Client) RateLimit() RateLimitInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rateLimitInfo
}

// GetUser fetches a public profile
func (c *Client) GetUser(ctx context.Context, username string) (*models.UserProfile, error) {
	if username == "" {
		return nil, NewValidationError("username", "cannot be empty")
	}

	endpoint := fmt.Sprintf("%s/users/%s", c.baseURL, url.PathEscape(username))

	var user models.UserProfile
	if err := c.get(ctx, "user", endpoint, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListRepositories fetches a single bulk page of the user's repositories, most recently updated first
func (c *Client) ListRepositories(ctx context.Context, username string) ([]models.Repository, error) {
	if username == "" {
		return nil, NewValidationError("username", "cannot be empty")
	}

	query := url.Values{}
	query.Set("per_page", strconv.Itoa(c.perPage))
	query.Set("sort", "updated")
	endpoint := fmt.Sprintf("%s/users/%s/repos?%s", c.baseURL, url.PathEscape(username), query.Encode())

	var repos []models.Repository
	if err := c.get(ctx, "repositories", endpoint, &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

// ListCommits fetches the commits of owner/name authored in [since, until]
func (c *Client) ListCommits(ctx context.Context, owner, name string, since, until time.Time) ([]models.Commit, error) {
	if owner == "" {
		return nil, NewValidationError("owner", "cannot be empty")
	}
	if name == "" {
		return nil, NewValidationError("name", "cannot be empty")
	}

	query := url.Values{}
	query.Set("since", since.UTC().Format(time.RFC3339))
	query.Set("until", until.UTC().Format(time.RFC3339))
	query.Set("per_page", strconv.Itoa(c.perPage))
	endpoint := fmt.Sprintf("%s/repos/%s/%s/commits?%s",
		c.baseURL, url.PathEscape(owner), url.PathEscape(name), query.Encode())

	var commits []models.Commit
	if err := c.get(ctx, "commits", endpoint, &commits); err != nil {
		return nil, err
	}
	return commits, nil
}

// get performs one GET and decodes a 2xx body into result
func (c *Client) get(ctx context.Context, name, endpoint string, result interface{}) (err error) {
	start := time.Now()
	defer func() {
		metrics.RecordUpstream(name, string(OutcomeOf(err)), time.Since(start).Seconds())
	}()

	logger := c.logger.WithFields(logrus.Fields{
		"endpoint": name,
		"url":      endpoint,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		logger.WithError(err).Warn("GitHub request failed")
		return NewGitHubError(0, "request failed", err)
	}
	defer resp.Body.Close()

	info := c.updateRateLimitInfo(resp)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return NewGitHubError(resp.StatusCode, "failed to read response body", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return NewNotFoundError(req.URL.Path)
	case resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusTooManyRequests:
		logger.WithFields(logrus.Fields{
			"status":     resp.StatusCode,
			"remaining":  info.Remaining,
			"reset_time": info.ResetTime,
		}).Warn("GitHub rate limit hit")
		return NewRateLimitError(resp.StatusCode, info)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return NewGitHubError(resp.StatusCode, strings.TrimSpace(string(body)), nil)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return NewGitHubError(resp.StatusCode, "failed to decode response", err)
		}
	}

	logger.WithField("rate_limit_remaining", info.Remaining).Debug("GitHub request succeeded")
	return nil
}

// updateRateLimitInfo updates the rate limit information from response headers
func (c *Client) updateRateLimitInfo(resp *http.Response) RateLimitInfo {
	c.mu.Lock()
	defer c.mu.Unlock()

	if limit := resp.Header.Get("X-RateLimit-Limit"); limit != "" {
		c.rateLimitInfo.Limit, _ = strconv.Atoi(limit)
	}
	if remaining := resp.Header.Get("X-RateLimit-Remaining"); remaining != "" {
		c.rateLimitInfo.Remaining, _ = strconv.Atoi(remaining)
	}
	if reset := resp.Header.Get("X-RateLimit-Reset"); reset != "" {
		if resetTime, err := strconv.ParseInt(reset, 10, 64); err == nil {
			c.rateLimitInfo.ResetTime = time.Unix(resetTime, 0)
		}
	}

	return c.rateLimitInfo
}
