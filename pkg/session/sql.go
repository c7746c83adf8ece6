package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
)

// queries holds the dialect-specific statements for the sessions table.
type queries struct {
	get   string
	set   string
	clear string
}

var postgresQueries = queries{
	get: `SELECT session_value FROM sessions WHERE session_key = $1`,
	set: `INSERT INTO sessions (session_key, session_value, updated_at)
VALUES ($1, $2, CURRENT_TIMESTAMP)
ON CONFLICT (session_key) DO UPDATE
SET session_value = excluded.session_value, updated_at = excluded.updated_at`,
	clear: `DELETE FROM sessions WHERE session_key = $1`,
}

var sqliteQueries = queries{
	get: `SELECT session_value FROM sessions WHERE session_key = ?`,
	set: `INSERT INTO sessions (session_key, session_value, updated_at)
VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT (session_key) DO UPDATE
SET session_value = excluded.session_value, updated_at = excluded.updated_at`,
	clear: `DELETE FROM sessions WHERE session_key = ?`,
}

type sqlStore struct {
	db     *sql.DB
	q      queries
	logger *slog.Logger
}

// NewSQL creates a store over an open connection pool whose schema has
// already been migrated. driver selects the statement dialect.
func NewSQL(db *sql.DB, driver string, logger *slog.Logger) (Store, error) {
	var q queries
	switch driver {
	case BackendPostgres:
		q = postgresQueries
	case BackendSQLite:
		q = sqliteQueries
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	return &sqlStore{
		db:     db,
		q:      q,
		logger: logger.With("system", "session", "backend", driver),
	}, nil
}

func (s *sqlStore) Get(ctx context.Context, key string) (string, error) {
	if err := ValidateKey(key); err != nil {
		return "", err
	}

	var value string
	err := s.db.QueryRowContext(ctx, s.q.get, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("query %s: %w", key, err)
	}
	return value, nil
}

func (s *sqlStore) Set(ctx context.Context, key, value string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, s.q.set, key, value); err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}

	s.logger.Debug("session value stored", "key", key)
	return nil
}

func (s *sqlStore) Clear(ctx context.Context, key string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, s.q.clear, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}
