package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const DefaultSQLitePath = "data/portfolio.db"

// SQLite stores values in a single kv table.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and makes
// sure the kv table exists.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	if path == "" {
		path = DefaultSQLitePath
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("kv: create sqlite dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("kv: open sqlite %s: %w", path, err)
	}
	// sqlite allows a single writer
	db.SetMaxOpenConns(1)

	createTable := `
	CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := db.ExecContext(ctx, createTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("kv: create kv table: %w", err)
	}

	log.Printf("[kv] sqlite store ready at %s", path)
	return &SQLite{db: db}, nil
}

func (s *SQLite) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("kv: get %s: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLite) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("kv: set %s: %w", key, err)
	}
	return nil
}

func (s *SQLite) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
