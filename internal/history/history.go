package history

import (
	"context"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/Kamar-Folarin/github-analyzer/internal/config"
	"github.com/Kamar-Folarin/github-analyzer/internal/db"
)

// RecentSearches is the bounded, most-recent-first list of searched logins.
// With a nil store it only lives in memory.
type RecentSearches struct {
	store  db.HistoryStore
	key    string
	limit  int
	logger *logrus.Logger

	mu      sync.RWMutex
	entries []string
}

// NewRecentSearches creates a recent-search list backed by store
func NewRecentSearches(store db.HistoryStore, cfg *config.HistoryConfig, logger *logrus.Logger) *RecentSearches {
	if cfg == nil {
		cfg = config.DefaultHistoryConfig()
	}
	limit := cfg.Limit
	if limit <= 0 {
		limit = config.DefaultHistoryConfig().Limit
	}
	return &RecentSearches{
		store:   store,
		key:     cfg.Key,
		limit:   limit,
		logger:  logger,
		entries: []string{},
	}
}

// Load replaces the in-memory list with the stored one. A read failure keeps
// the list empty and is returned for logging only.
func (h *RecentSearches) Load(ctx context.Context) error {
	if h.store == nil {
		return nil
	}

	entries, err := h.store.LoadSearchHistory(ctx, h.key)
	if err != nil {
		h.logger.WithError(err).WithField("key", h.key).Warn("Failed to load search history")
		return err
	}

	h.mu.Lock()
	h.entries = truncate(entries, h.limit)
	h.mu.Unlock()
	return nil
}

// Record moves login to the front of the list, dropping any earlier entry for the
// same login (case-insensitive) and anything past the limit, then persists the list.
// The in-memory list is updated even when persisting fails.
func (h *RecentSearches) Record(ctx context.Context, login string) error {
	login = strings.TrimSpace(login)
	if login == "" {
		return nil
	}

	h.mu.Lock()
	current := h.entries
	if h.store != nil {
		if stored, err := h.store.LoadSearchHistory(ctx, h.key); err == nil {
			current = stored
		} else {
			h.logger.WithError(err).Warn("Failed to re-read search history, using cached list")
		}
	}
	h.entries = prepend(current, login, h.limit)
	entries := append([]string(nil), h.entries...)
	h.mu.Unlock()

	if h.store == nil {
		return nil
	}
	if err := h.store.SaveSearchHistory(ctx, h.key, entries); err != nil {
		h.logger.WithError(err).WithField("login", login).Error("Failed to save search history")
		return err
	}
	return nil
}

// List returns a copy of the list, most recent first
func (h *RecentSearches) List() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]string{}, h.entries...)
}

func prepend(entries []string, login string, limit int) []string {
	result := make([]string, 0, limit)
	result = append(result, login)
	for _, e := range entries {
		if len(result) == limit {
			break
		}
		if !strings.EqualFold(e, login) {
			result = append(result, e)
		}
	}
	return result
}

func truncate(entries []string, limit int) []string {
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return append([]string{}, entries...)
}
