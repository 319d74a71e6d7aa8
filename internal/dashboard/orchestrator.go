package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Kamar-Folarin/github-analyzer/internal/activity"
	"github.com/Kamar-Folarin/github-analyzer/internal/config"
	apperrors "github.com/Kamar-Folarin/github-analyzer/internal/errors"
	"github.com/Kamar-Folarin/github-analyzer/internal/github"
	"github.com/Kamar-Folarin/github-analyzer/internal/metrics"
	"github.com/Kamar-Folarin/github-analyzer/internal/models"
	"github.com/Kamar-Folarin/github-analyzer/internal/stats"
	"github.com/Kamar-Folarin/github-analyzer/pkg/utils"
)

const (
	subscriberBuffer = 32
	maxNotifications = 20
)

// CommitAggregator builds the commit activity series for a set of repositories.
type CommitAggregator interface {
	Aggregate(ctx context.Context, owner string, repos []models.Repository, now time.Time, window models.TimeWindow) ([]models.CommitDayBucket, error)
}

// SearchHistory is the recent-search list updated after every successful search.
type SearchHistory interface {
	Record(ctx context.Context, login string) error
	List() []string
}

// Option configures an Orchestrator
type Option func(*Orchestrator)

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) {
		o.now = now
	}
}

// WithLanguageAggregator replaces stats.LanguageTable
func WithLanguageAggregator(fn func([]models.Repository) []models.LanguageStat) Option {
	return func(o *Orchestrator) {
		o.languageTable = fn
	}
}

// WithSyntheticSource sets the random source of fallback series
func WithSyntheticSource(intn func(n int) int) Option {
	return func(o *Orchestrator) {
		o.intn = intn
	}
}

// Orchestrator owns the dashboard state. It sequences the remote calls of a search,
// runs the aggregations, and publishes every state change and notification to
// subscribers. Results of a superseded search or window change are dropped.
type Orchestrator struct {
	client     github.UserService
	aggregator CommitAggregator
	history    SearchHistory
	logger     *logrus.Logger

	now           func() time.Time
	languageTable func([]models.Repository) []models.LanguageStat
	intn          func(n int) int

	mu            sync.RWMutex
	state         State
	queryGen      uint64
	windowGen     uint64
	notifications []Notification

	subMu       sync.Mutex
	subscribers map[uint64]chan Event
	nextSubID   uint64
}

// NewOrchestrator creates an idle dashboard. history may be nil.
func NewOrchestrator(client github.UserService, aggregator CommitAggregator, history SearchHistory, cfg *config.AnalysisConfig, logger *logrus.Logger, opts ...Option) *Orchestrator {
	if cfg == nil {
		cfg = config.DefaultAnalysisConfig()
	}
	window := models.TimeWindow(cfg.DefaultWindow)
	if !window.Valid() {
		window = models.WindowLast30Days
	}

	o := &Orchestrator{
		client:        client,
		aggregator:    aggregator,
		history:       history,
		logger:        logger,
		now:           time.Now,
		languageTable: stats.LanguageTable,
		subscribers:   make(map[uint64]chan Event),
		state: State{
			Phase:     PhaseIdle,
			Window:    window,
			UpdatedAt: time.Now(),
		},
	}
	for _, opt := range opts {
		opt(o)
	}
	o.state.UpdatedAt = o.now()
	return o
}

// Snapshot returns a copy of the current state
func (o *Orchestrator) Snapshot() State {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.state.clone()
}

// Notifications returns the most recent notifications, newest first
func (o *Orchestrator) Notifications() []Notification {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return append([]Notification{}, o.notifications...)
}

// History returns the recent-search list, most recent first
func (o *Orchestrator) History() []string {
	if o.history == nil {
		return []string{}
	}
	return o.history.List()
}

// Search loads the profile, repositories and derived statistics of username.
// It returns an AppError when the input is blank or the profile or repository
// lookup fails; aggregation failures are absorbed into the state.
func (o *Orchestrator) Search(ctx context.Context, username string) error {
	login := utils.NormalizeUsername(username)
	if login == "" {
		o.notify(LevelError, "Error", "Please enter a GitHub username")
		return apperrors.NewValidationError("Please enter a GitHub username", nil)
	}

	logger := o.logger.WithField("username", login)
	logger.Info("Starting search")

	o.mu.Lock()
	o.queryGen++
	gen := o.queryGen
	window := o.state.Window
	o.mu.Unlock()

	o.commit(gen, 0, func(s *State) {
		*s = State{
			Phase:    PhaseSearching,
			Username: login,
			Window:   window,
			Loading:  Loading{Profile: true},
		}
	})

	user, err := o.client.GetUser(ctx, login)
	if err != nil {
		appErr := profileError(err)
		logger.WithError(err).Warn("Failed to fetch user")
		if o.commit(gen, 0, func(s *State) {
			*s = State{
				Phase:     PhaseSearchFailed,
				Username:  login,
				Window:    window,
				LastError: appErr.Message,
			}
		}) {
			o.notify(LevelError, "Error", appErr.Message)
			metrics.RecordSearch(string(github.OutcomeOf(err)))
		}
		return appErr
	}

	if !o.commit(gen, 0, func(s *State) { s.User = user }) {
		return nil
	}

	repos, err := o.client.ListRepositories(ctx, login)
	if err != nil {
		appErr := apperrors.NewUpstreamError("Failed to fetch repositories", err)
		logger.WithError(err).Warn("Failed to fetch repositories")
		if o.commit(gen, 0, func(s *State) {
			s.Phase = PhaseSearchFailed
			s.Loading = Loading{}
			s.LastError = appErr.Message
		}) {
			o.notify(LevelError, "Error", appErr.Message)
			metrics.RecordSearch(string(github.OutcomeOf(err)))
		}
		return appErr
	}
	if repos == nil {
		repos = []models.Repository{}
	}

	if !o.commit(gen, 0, func(s *State) {
		s.Repositories = repos
		s.Loading = Loading{Commits: true, Languages: true}
	}) {
		return nil
	}

	now := o.now()
	var g errgroup.Group
	g.Go(func() error {
		series, warning := o.commitSeries(ctx, user.Login, repos, now, window)
		if o.commit(gen, 0, func(s *State) {
			s.CommitActivity = series
			s.CommitActivitySynthetic = warning != ""
			s.Loading.Commits = false
		}) {
			o.warnSynthetic(warning)
		}
		return nil
	})
	g.Go(func() error {
		table := o.languages(repos)
		o.commit(gen, 0, func(s *State) {
			s.LanguageStats = table
			s.Loading.Languages = false
		})
		return nil
	})
	_ = g.Wait()

	if !o.commit(gen, 0, func(s *State) { s.Phase = PhaseReady }) {
		return nil
	}

	o.notify(LevelSuccess, "Success", fmt.Sprintf("Found GitHub user: %s", user.DisplayName()))
	metrics.RecordSearch(string(github.OutcomeOK))

	if o.history != nil {
		if err := o.history.Record(ctx, user.Login); err != nil {
			logger.WithError(err).Warn("Failed to record search history")
		}
	}

	logger.WithFields(logrus.Fields{
		"repositories": len(repos),
		"window":       window,
	}).Info("Search completed")
	return nil
}

// ChangeWindow recomputes only the commit activity for a new window, keeping the
// profile and repositories. It does nothing unless a search has completed.
func (o *Orchestrator) ChangeWindow(ctx context.Context, window models.TimeWindow) error {
	o.mu.Lock()
	if o.state.User == nil || (o.state.Phase != PhaseReady && o.state.Phase != PhaseRecomputingCommits) {
		o.mu.Unlock()
		return nil
	}
	o.windowGen++
	gen, wgen := o.queryGen, o.windowGen
	login := o.state.User.Login
	repos := append([]models.Repository(nil), o.state.Repositories...)
	o.mu.Unlock()

	o.commit(gen, wgen, func(s *State) {
		s.Phase = PhaseRecomputingCommits
		s.Window = window
		s.Loading.Commits = true
	})

	series, warning := o.commitSeries(ctx, login, repos, o.now(), window)
	if !o.commit(gen, wgen, func(s *State) {
		s.Phase = PhaseReady
		s.CommitActivity = series
		s.CommitActivitySynthetic = warning != ""
		s.Loading.Commits = false
	}) {
		return nil
	}
	o.warnSynthetic(warning)

	o.logger.WithFields(logrus.Fields{
		"username": login,
		"window":   window,
	}).Info("Commit activity recomputed")
	return nil
}

// Refresh repeats the search for the loaded user. It does nothing when no user is loaded.
func (o *Orchestrator) Refresh(ctx context.Context) error {
	o.mu.RLock()
	var login string
	if o.state.User != nil {
		login = o.state.User.Login
	}
	o.mu.RUnlock()

	if login == "" {
		return nil
	}
	return o.Search(ctx, login)
}

// Subscribe registers a listener for state and notification events. Events are
// dropped for a listener whose buffer is full. The returned function unsubscribes.
func (o *Orchestrator) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	o.subMu.Lock()
	id := o.nextSubID
	o.nextSubID++
	o.subscribers[id] = ch
	o.subMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			o.subMu.Lock()
			delete(o.subscribers, id)
			o.subMu.Unlock()
			close(ch)
		})
	}
}

// commitSeries runs commit aggregation and falls back to a synthetic series on
// any failure, panics included. warning is empty for a real series and otherwise
// holds the description of the fallback notification.
func (o *Orchestrator) commitSeries(ctx context.Context, login string, repos []models.Repository, now time.Time, window models.TimeWindow) (series []models.CommitDayBucket, warning string) {
	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = apperrors.NewInternalError("Failed to fetch commit activity", fmt.Errorf("panic: %v", r))
			}
		}()
		series, err = o.aggregator.Aggregate(ctx, login, repos, now, window)
		return err
	}()
	if err == nil {
		return series, ""
	}

	warning = "Failed to fetch commit activity"
	if apperrors.IsNoRepositories(err) {
		warning = apperrors.MessageOf(err)
	}
	o.logger.WithError(err).WithField("username", login).Warn("Using synthetic commit activity")

	return activity.SyntheticSeries(now, window, o.intn), warning
}

// warnSynthetic announces a fallback series once it has been applied to the state.
func (o *Orchestrator) warnSynthetic(warning string) {
	if warning == "" {
		return
	}
	o.notify(LevelWarning, "Warning", warning)
	metrics.RecordSyntheticSeries()
}

func (o *Orchestrator) languages(repos []models.Repository) (table []models.LanguageStat) {
	defer func() {
		if r := recover(); r != nil {
			o.logger.WithField("panic", r).Error("Error calculating language statistics")
			table = []models.LanguageStat{}
		}
	}()
	return o.languageTable(repos)
}

// commit applies fn to the state when gen (and wgen, if non-zero) are still
// current, then publishes the new state. It reports whether fn was applied.
func (o *Orchestrator) commit(gen, wgen uint64, fn func(*State)) bool {
	o.mu.Lock()
	if gen != o.queryGen || (wgen != 0 && wgen != o.windowGen) {
		o.mu.Unlock()
		o.logger.WithFields(logrus.Fields{
			"generation":        gen,
			"window_generation": wgen,
		}).Debug("Dropping stale result")
		return false
	}
	fn(&o.state)
	o.state.UpdatedAt = o.now()
	snapshot := o.state.clone()
	o.mu.Unlock()

	o.publish(Event{Type: EventState, State: &snapshot})
	return true
}

func (o *Orchestrator) notify(level Level, title, description string) {
	n := Notification{
		ID:          uuid.NewString(),
		Level:       level,
		Title:       title,
		Description: description,
		CreatedAt:   o.now(),
	}

	o.mu.Lock()
	o.notifications = append([]Notification{n}, o.notifications...)
	if len(o.notifications) > maxNotifications {
		o.notifications = o.notifications[:maxNotifications]
	}
	o.mu.Unlock()

	o.publish(Event{Type: EventNotification, Notification: &n})
}

func (o *Orchestrator) publish(event Event) {
	o.subMu.Lock()
	defer o.subMu.Unlock()

	for _, ch := range o.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}

func profileError(err error) *apperrors.AppError {
	switch github.OutcomeOf(err) {
	case github.OutcomeNotFound:
		return apperrors.NewNotFoundError("User not found", err)
	case github.OutcomeRateLimited:
		return apperrors.NewRateLimitError("API rate limit exceeded. Please try again later.", err)
	default:
		return apperrors.NewUpstreamError("Failed to fetch user data", err)
	}
}
