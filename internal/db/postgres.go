package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// PostgresStore keeps the search history in the kv_store table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(connectionString string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Migrate() error {
	goose.SetBaseFS(migrations)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	if err := goose.Up(s.db, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// LoadSearchHistory reads the list stored under key
func (s *PostgresStore) LoadSearchHistory(ctx context.Context, key string) ([]string, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT value FROM kv_store WHERE key = $1
	`, key).Scan(&value)

	if err == sql.ErrNoRows {
		return []string{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to load search history: %w", err)
	}

	return decodeHistory(value)
}

// SaveSearchHistory replaces the list stored under key
func (s *PostgresStore) SaveSearchHistory(ctx context.Context, key string, entries []string) error {
	value, err := encodeHistory(entries)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO kv_store (key, value, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = NOW()
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to save search history: %w", err)
	}

	return nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
