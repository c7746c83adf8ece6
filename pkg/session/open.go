package session

import (
	"context"
	"embed"
	"fmt"
	"io"
	"log/slog"

	"github.com/JaimeStill/parkease/pkg/database"
)

//go:embed migrations
var migrations embed.FS

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

var nopCloser = closerFunc(func() error { return nil })

// Open builds the backend named by cfg.Backend. SQL backends are migrated
// before use. The returned closer releases backend resources and is safe to
// call when the backend holds none.
func Open(ctx context.Context, cfg *Config, logger *slog.Logger) (Store, io.Closer, error) {
	switch cfg.Backend {
	case BackendMemory:
		return NewMemory(), nopCloser, nil

	case BackendFile:
		store, err := NewFile(cfg.Path, logger)
		if err != nil {
			return nil, nil, err
		}
		return store, nopCloser, nil

	case BackendPostgres, BackendSQLite:
		if err := database.Migrate(ctx, &cfg.Database, migrations, "migrations/"+cfg.Backend); err != nil {
			return nil, nil, fmt.Errorf("migrate sessions: %w", err)
		}

		db, err := database.Open(ctx, &cfg.Database)
		if err != nil {
			return nil, nil, err
		}

		store, err := NewSQL(db, cfg.Backend, logger)
		if err != nil {
			db.Close()
			return nil, nil, err
		}

		logger.Info("session store opened", "backend", cfg.Backend)
		return store, db, nil

	default:
		return nil, nil, fmt.Errorf("unsupported backend: %s", cfg.Backend)
	}
}
