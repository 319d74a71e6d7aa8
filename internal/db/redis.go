package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the search history as a JSON string value.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to the server described by a redis:// URL.
func NewRedisStore(ctx context.Context, url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

// LoadSearchHistory reads the list stored under key
func (s *RedisStore) LoadSearchHistory(ctx context.Context, key string) ([]string, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []string{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to load search history: %w", err)
	}

	return decodeHistory(value)
}

// SaveSearchHistory replaces the list stored under key
func (s *RedisStore) SaveSearchHistory(ctx context.Context, key string, entries []string) error {
	value, err := encodeHistory(entries)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to save search history: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
