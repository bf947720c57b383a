// Package device is the key-value storage of the terminal client, it keeps
// the auth tokens and the selected language between runs.
package device

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

const (
	TokenKey        = "auth_token"
	RefreshTokenKey = "refresh_token"
	LanguageKey     = "appLanguage"
)

var ErrKeyNotFound = errors.New("key not found")

type Storage struct {
	db *sql.DB
}

func New(path string) (*Storage, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("error while opening device storage: %w", err)
	}

	err = db.Ping()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("error while connecting to device storage: %w", err)
	}

	_, err = db.Exec(schemaDDL)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("error while migrating device storage: %w", err)
	}

	return &Storage{db: db}, nil
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS kv (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrKeyNotFound
		}
		return "", fmt.Errorf("error while reading %s: %w", key, err)
	}

	return value, nil
}

func (s *Storage) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	if err != nil {
		return fmt.Errorf("error while writing %s: %w", key, err)
	}

	return nil
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	return s.MultiRemove(ctx, key)
}

func (s *Storage) MultiRemove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(keys)), ",")
	args := make([]any, 0, len(keys))
	for _, key := range keys {
		args = append(args, key)
	}

	_, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key IN (`+placeholders+`)`, args...)
	if err != nil {
		return fmt.Errorf("error while removing %s: %w", strings.Join(keys, ", "), err)
	}

	return nil
}
