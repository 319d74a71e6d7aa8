package github

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kamar-Folarin/github-analyzer/internal/activity"
	"github.com/Kamar-Folarin/github-analyzer/internal/config"
	"github.com/Kamar-Folarin/github-analyzer/internal/models"
)

// These tests call the public GitHub API and only run with GITHUB_INTEGRATION=1.
// Unauthenticated requests are limited to 60 per hour.

const integrationUser = "octocat"

func setupLiveClient(t *testing.T) *Client {
	t.Helper()

	if os.Getenv("GITHUB_INTEGRATION") != "1" {
		t.Skip("GITHUB_INTEGRATION not set")
	}

	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetLevel(logrus.DebugLevel)

	cfg := config.DefaultGitHubConfig()
	cfg.Timeout = 30 * time.Second
	return NewClient(cfg, logger)
}

func TestClient_Integration_Profile(t *testing.T) {
	client := setupLiveClient(t)
	ctx := context.Background()

	t.Run("existing user", func(t *testing.T) {
		user, err := client.GetUser(ctx, integrationUser)
		require.NoError(t, err)
		assert.Equal(t, integrationUser, user.Login)
		assert.NotZero(t, user.PublicRepos)

		info := client.RateLimit()
		assert.NotZero(t, info.Limit)
		assert.False(t, info.ResetTime.IsZero())
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := client.GetUser(ctx, "this-user-should-not-exist-3f9a1c7e")
		require.Error(t, err)
		assert.Equal(t, OutcomeNotFound, OutcomeOf(err))
	})
}

func TestClient_Integration_Activity(t *testing.T) {
	client := setupLiveClient(t)
	ctx := context.Background()

	repos, err := client.ListRepositories(ctx, integrationUser)
	require.NoError(t, err)
	require.NotEmpty(t, repos)

	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	aggregator := activity.NewAggregator(client, config.DefaultAnalysisConfig(), logger)

	now := time.Now()
	series, err := aggregator.Aggregate(ctx, integrationUser, repos, now, models.WindowLastYear)
	require.NoError(t, err)

	start, end := activity.ResolveWindow(now, models.WindowLastYear)
	require.Len(t, series, activity.DayCount(start, end))
	for _, bucket := range series {
		assert.GreaterOrEqual(t, bucket.Count, 0)
	}
}

func TestClient_Integration_ConcurrentRequests(t *testing.T) {
	client := setupLiveClient(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 3)
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := client.GetUser(ctx, integrationUser)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.NotZero(t, client.RateLimit().Remaining)
}
