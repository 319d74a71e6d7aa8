package db

import (
	"context"
	"encoding/json"
	"fmt"
)

// HistoryStore persists the recent-search list outside process memory.
// A missing key loads as an empty list.
type HistoryStore interface {
	LoadSearchHistory(ctx context.Context, key string) ([]string, error)
	SaveSearchHistory(ctx context.Context, key string, entries []string) error
	Close() error
}

func encodeHistory(entries []string) ([]byte, error) {
	if entries == nil {
		entries = []string{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search history: %w", err)
	}
	return data, nil
}

// decodeHistory treats JSON null as an empty list.
func decodeHistory(data []byte) ([]string, error) {
	var entries []string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal search history: %w", err)
	}
	if entries == nil {
		entries = []string{}
	}
	return entries, nil
}
