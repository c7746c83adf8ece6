package session

import (
	"fmt"
	"os"

	"github.com/JaimeStill/parkease/pkg/database"
)

// Supported session backends.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendPostgres = database.DriverPostgres
	BackendSQLite   = database.DriverSQLite
)

// Config selects and configures the session backend.
type Config struct {
	Backend  string          `toml:"backend"`
	Path     string          `toml:"path"`
	Database database.Config `toml:"database"`
}

// Env maps environment variable names for session configuration.
type Env struct {
	Backend  string
	Path     string
	Database *database.Env
}

// Finalize applies defaults, loads environment overrides, and validates the session configuration.
// Database settings are only finalized for SQL backends.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	if err := c.validate(); err != nil {
		return err
	}

	if c.Backend == BackendPostgres || c.Backend == BackendSQLite {
		c.Database.Driver = c.Backend
		var dbEnv *database.Env
		if env != nil {
			dbEnv = env.Database
		}
		if err := c.Database.Finalize(dbEnv); err != nil {
			return fmt.Errorf("database: %w", err)
		}
	}
	return nil
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *Config) Merge(overlay *Config) {
	if overlay.Backend != "" {
		c.Backend = overlay.Backend
	}
	if overlay.Path != "" {
		c.Path = overlay.Path
	}
	c.Database.Merge(&overlay.Database)
}

func (c *Config) loadDefaults() {
	if c.Backend == "" {
		c.Backend = BackendFile
	}
	if c.Path == "" {
		c.Path = ".data/session"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.Backend != "" {
		if v := os.Getenv(env.Backend); v != "" {
			c.Backend = v
		}
	}
	if env.Path != "" {
		if v := os.Getenv(env.Path); v != "" {
			c.Path = v
		}
	}
}

func (c *Config) validate() error {
	switch c.Backend {
	case BackendMemory, BackendFile, BackendPostgres, BackendSQLite:
		return nil
	default:
		return fmt.Errorf("unsupported backend: %s (must be memory, file, postgres, or sqlite)", c.Backend)
	}
}
