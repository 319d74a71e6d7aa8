package github

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kamar-Folarin/github-analyzer/internal/config"
)

func setupTestClient(t *testing.T) (*Client, *httptest.Server, func()) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	// Create test server
	server := httptest.NewServer(nil)
	client := NewClient(
		config.DefaultGitHubConfig(),
		logger,
		WithBaseURL(server.URL),
		WithHTTPClient(server.Client()),
	)

	cleanup := func() {
		server.Close()
	}

	return client, server, cleanup
}

func TestClient_GetUser(t *testing.T) {
	client, server, cleanup := setupTestClient(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("successful request", func(t *testing.T) {
		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/users/octocat", r.URL.Path)
			assert.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))
			assert.Equal(t, "github-analyzer/1.0", r.Header.Get("User-Agent"))

			w.Header().Set("X-RateLimit-Limit", "60")
			w.Header().Set("X-RateLimit-Remaining", "59")
			w.Header().Set("X-RateLimit-Reset", "1700000000")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"login": "octocat",
				"name": "The Octocat",
				"bio": null,
				"followers": 42,
				"following": 7,
				"location": "San Francisco",
				"company": "@github",
				"blog": "https://github.blog",
				"html_url": "https://github.com/octocat",
				"created_at": "2011-01-25T18:44:36Z"
			}`))
		})

		user, err := client.GetUser(ctx, "octocat")
		require.NoError(t, err)
		assert.Equal(t, "octocat", user.Login)
		assert.Equal(t, "The Octocat", user.Name)
		assert.Empty(t, user.Bio)
		assert.Equal(t, 42, user.Followers)
		assert.Equal(t, 7, user.Following)
		assert.Equal(t, "https://github.com/octocat", user.URL)
		assert.Equal(t, time.Date(2011, 1, 25, 18, 44, 36, 0, time.UTC), user.CreatedAt)

		info := client.RateLimit()
		assert.Equal(t, 60, info.Limit)
		assert.Equal(t, 59, info.Remaining)
		assert.Equal(t, time.Unix(1700000000, 0), info.ResetTime)
	})

	t.Run("not found", func(t *testing.T) {
		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"Not Found"}`))
		})

		_, err := client.GetUser(ctx, "ghost-user")
		require.Error(t, err)
		assert.IsType(t, &NotFoundError{}, err)
		assert.Equal(t, OutcomeNotFound, OutcomeOf(err))
	})

	t.Run("rate limited", func(t *testing.T) {
		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-RateLimit-Limit", "60")
			w.Header().Set("X-RateLimit-Remaining", "0")
			w.Header().Set("X-RateLimit-Reset", "1700000000")
			w.WriteHeader(http.StatusForbidden)
		})

		_, err := client.GetUser(ctx, "octocat")
		require.Error(t, err)
		assert.Equal(t, OutcomeRateLimited, OutcomeOf(err))

		var rateErr *RateLimitError
		require.ErrorAs(t, err, &rateErr)
		assert.Equal(t, http.StatusForbidden, rateErr.StatusCode)
		assert.Equal(t, 0, rateErr.Remaining)
	})

	t.Run("server error", func(t *testing.T) {
		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("upstream down"))
		})

		_, err := client.GetUser(ctx, "octocat")
		require.Error(t, err)
		assert.Equal(t, OutcomeFailure, OutcomeOf(err))

		var ghErr *GitHubError
		require.ErrorAs(t, err, &ghErr)
		assert.Equal(t, http.StatusBadGateway, ghErr.StatusCode)
		assert.Equal(t, "upstream down", ghErr.Message)
	})

	t.Run("single round trip on failure", func(t *testing.T) {
		calls := 0
		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.GetUser(ctx, "octocat")
		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("malformed body", func(t *testing.T) {
		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"login":`))
		})

		_, err := client.GetUser(ctx, "octocat")
		require.Error(t, err)
		assert.Equal(t, OutcomeFailure, OutcomeOf(err))
	})

	t.Run("validation error", func(t *testing.T) {
		_, err := client.GetUser(ctx, "")
		assert.Error(t, err)
		assert.IsType(t, &ValidationError{}, err)
	})
}

func TestClient_ListRepositories(t *testing.T) {
	client, server, cleanup := setupTestClient(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("successful request", func(t *testing.T) {
		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/users/octocat/repos", r.URL.Path)
			assert.Equal(t, "100", r.URL.Query().Get("per_page"))
			assert.Equal(t, "updated", r.URL.Query().Get("sort"))

			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`[
				{
					"id": 1,
					"name": "hello-world",
					"description": "My first repository",
					"language": "Go",
					"stargazers_count": 10,
					"forks_count": 3,
					"watchers_count": 10,
					"fork": false,
					"topics": ["demo"],
					"pushed_at": "2024-03-30T10:00:00Z"
				},
				{
					"id": 2,
					"name": "dotfiles",
					"description": null,
					"language": null,
					"fork": true,
					"pushed_at": "2024-01-01T00:00:00Z"
				}
			]`))
		})

		repos, err := client.ListRepositories(ctx, "octocat")
		require.NoError(t, err)
		require.Len(t, repos, 2)

		assert.Equal(t, int64(1), repos[0].ID)
		assert.Equal(t, "Go", repos[0].PrimaryLanguage())
		assert.Equal(t, "My first repository", repos[0].DescriptionText())
		assert.Equal(t, 10, repos[0].StarsCount)
		assert.Equal(t, []string{"demo"}, repos[0].Topics)
		assert.Equal(t, time.Date(2024, 3, 30, 10, 0, 0, 0, time.UTC), repos[0].PushedAt)

		assert.Empty(t, repos[1].PrimaryLanguage())
		assert.Nil(t, repos[1].Description)
		assert.True(t, repos[1].Fork)
	})

	t.Run("failure", func(t *testing.T) {
		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.ListRepositories(ctx, "octocat")
		require.Error(t, err)
		assert.Equal(t, OutcomeFailure, OutcomeOf(err))
	})
}

func TestClient_ListCommits(t *testing.T) {
	client, server, cleanup := setupTestClient(t)
	defer cleanup()

	ctx := context.Background()
	since := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	until := time.Date(2024, 3, 31, 12, 30, 0, 0, time.UTC)

	t.Run("successful request", func(t *testing.T) {
		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/repos/octocat/hello-world/commits", r.URL.Path)
			assert.Equal(t, "2024-03-02T00:00:00Z", r.URL.Query().Get("since"))
			assert.Equal(t, "2024-03-31T12:30:00Z", r.URL.Query().Get("until"))
			assert.Equal(t, "100", r.URL.Query().Get("per_page"))

			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`[
				{"sha": "abc123", "commit": {"message": "first", "author": {"name": "Mona", "date": "2024-03-05T09:00:00Z"}}},
				{"sha": "def456", "commit": {"message": "second", "author": {"name": "Mona", "date": "not-a-date"}}}
			]`))
		})

		commits, err := client.ListCommits(ctx, "octocat", "hello-world", since, until)
		require.NoError(t, err)
		require.Len(t, commits, 2)

		authored, ok := commits[0].AuthoredAt()
		assert.True(t, ok)
		assert.Equal(t, time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC), authored)

		_, ok = commits[1].AuthoredAt()
		assert.False(t, ok)
	})

	t.Run("empty repository", func(t *testing.T) {
		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"message":"Git Repository is empty."}`))
		})

		_, err := client.ListCommits(ctx, "octocat", "empty", since, until)
		require.Error(t, err)
		assert.Equal(t, OutcomeFailure, OutcomeOf(err))
	})

	t.Run("validation error", func(t *testing.T) {
		_, err := client.ListCommits(ctx, "", "hello-world", since, until)
		assert.IsType(t, &ValidationError{}, err)

		_, err = client.ListCommits(ctx, "octocat", "", since, until)
		assert.IsType(t, &ValidationError{}, err)
	})
}

func TestClient_TransportFailure(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	client := NewClient(config.DefaultGitHubConfig(), logger, WithBaseURL(baseURL))

	_, err := client.GetUser(context.Background(), "octocat")
	require.Error(t, err)
	assert.Equal(t, OutcomeFailure, OutcomeOf(err))

	var ghErr *GitHubError
	require.ErrorAs(t, err, &ghErr)
	assert.Equal(t, 0, ghErr.StatusCode)
}

func TestOutcomeOf(t *testing.T) {
	assert.Equal(t, OutcomeOK, OutcomeOf(nil))
	assert.Equal(t, OutcomeNotFound, OutcomeOf(NewNotFoundError("/users/x")))
	assert.Equal(t, OutcomeRateLimited, OutcomeOf(NewRateLimitError(http.StatusTooManyRequests, RateLimitInfo{})))
	assert.Equal(t, OutcomeFailure, OutcomeOf(NewGitHubError(500, "boom", nil)))
	assert.Equal(t, OutcomeFailure, OutcomeOf(NewValidationError("owner", "cannot be empty")))
}
