package db

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Backend names accepted by OpenHistoryStore
const (
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendNone     = "none"
)

// StoreOptions carries the connection settings of every backend
type StoreOptions struct {
	PostgresURL     string
	RedisURL        string
	MigrateAttempts int
	MigrateDelay    time.Duration
}

// OpenHistoryStore connects to the named backend. The "none" backend returns a
// nil store, which callers treat as memory-only history.
func OpenHistoryStore(ctx context.Context, backend string, opts StoreOptions) (HistoryStore, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendPostgres:
		if opts.PostgresURL == "" {
			return nil, fmt.Errorf("postgres history backend requires a connection string")
		}
		store, err := NewPostgresStore(opts.PostgresURL)
		if err != nil {
			return nil, err
		}
		if err := retry(opts.MigrateAttempts, opts.MigrateDelay, store.Migrate); err != nil {
			store.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		return store, nil
	case BackendRedis:
		store, err := NewRedisStore(ctx, opts.RedisURL)
		if err != nil {
			return nil, err
		}
		return store, nil
	case BackendNone, "memory", "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown history backend %q", backend)
	}
}

// retry retries fn up to attempts times with a delay between attempts
func retry(attempts int, sleep time.Duration, fn func() error) error {
	if err := fn(); err != nil {
		if attempts--; attempts > 0 {
			time.Sleep(sleep)
			return retry(attempts, sleep, fn)
		}
		return err
	}
	return nil
}
