package activity

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Kamar-Folarin/github-analyzer/internal/batch"
	"github.com/Kamar-Folarin/github-analyzer/internal/config"
	apperrors "github.com/Kamar-Folarin/github-analyzer/internal/errors"
	"github.com/Kamar-Folarin/github-analyzer/internal/metrics"
	"github.com/Kamar-Folarin/github-analyzer/internal/models"
)

// CommitLister fetches the commits of one repository in a time range.
type CommitLister interface {
	ListCommits(ctx context.Context, owner, name string, since, until time.Time) ([]models.Commit, error)
}

// Aggregator builds daily commit histograms from the most recently pushed repositories.
type Aggregator struct {
	client    CommitLister
	processor *batch.Processor
	maxRepos  int
	logger    *logrus.Logger
}

// NewAggregator creates a commit activity aggregator
func NewAggregator(client CommitLister, cfg *config.AnalysisConfig, logger *logrus.Logger) *Aggregator {
	if cfg == nil {
		cfg = config.DefaultAnalysisConfig()
	}
	maxRepos := cfg.MaxActiveRepos
	if maxRepos <= 0 {
		maxRepos = config.DefaultAnalysisConfig().MaxActiveRepos
	}
	return &Aggregator{
		client:    client,
		processor: batch.NewProcessor(&cfg.Batch),
		maxRepos:  maxRepos,
		logger:    logger,
	}
}

// Aggregate returns a dense, ascending series with one bucket per day of the window.
// It fails with a NO_REPOSITORIES error when repos is empty; individual commit
// fetch failures are logged and skipped.
func (a *Aggregator) Aggregate(ctx context.Context, owner string, repos []models.Repository, now time.Time, window models.TimeWindow) ([]models.CommitDayBucket, error) {
	start, end := ResolveWindow(now, window)

	buckets := make(map[string]int)
	for _, day := range Days(start, end) {
		buckets[day] = 0
	}

	active := SelectActive(repos, a.maxRepos)
	if len(active) == 0 {
		return nil, apperrors.NewNoRepositoriesError("No repositories found to analyze commits")
	}

	logger := a.logger.WithFields(logrus.Fields{
		"owner":  owner,
		"window": window,
		"start":  start.Format(DayLayout),
		"end":    end.Format(DayLayout),
		"repos":  len(active),
	})

	results := make([][]models.Commit, len(active))
	errs, progress := a.processor.Settle(ctx, len(active), func(ctx context.Context, i int) error {
		commits, err := a.client.ListCommits(ctx, owner, active[i].Name, start, now)
		if err != nil {
			return fmt.Errorf("failed to fetch commits for %s: %w", active[i].Name, err)
		}
		results[i] = commits
		return nil
	})

	for i, err := range errs {
		if err != nil {
			logger.WithError(err).WithField("repository", active[i].Name).Warn("Skipping repository commit activity")
		}
	}
	if progress.Failed > 0 {
		metrics.RecordCommitFetchFailures(progress.Failed)
	}

	for _, commits := range results {
		for _, commit := range commits {
			authored, ok := commit.AuthoredAt()
			if !ok {
				continue
			}
			day := authored.UTC().Format(DayLayout)
			if _, inRange := buckets[day]; inRange {
				buckets[day]++
			}
		}
	}

	series := make([]models.CommitDayBucket, 0, len(buckets))
	for day, count := range buckets {
		series = append(series, models.CommitDayBucket{Date: day, Count: count})
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date < series[j].Date
	})

	logger.WithFields(logrus.Fields{
		"succeeded": progress.Succeeded,
		"failed":    progress.Failed,
		"duration":  progress.Duration,
	}).Info("Aggregated commit activity")

	return series, nil
}

// SelectActive returns at most limit repositories ordered by pushed_at, newest first.
// The input slice is not modified.
func SelectActive(repos []models.Repository, limit int) []models.Repository {
	sorted := make([]models.Repository, len(repos))
	copy(sorted, repos)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PushedAt.After(sorted[j].PushedAt)
	})

	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
