package config

import (
	"fmt"
	"os"
	"strings"
)

// EnvAppBasePath overrides the public path prefix of the web shell.
const EnvAppBasePath = "APP_BASE_PATH"

// AppConfig configures the web shell. BasePath is the prefix an external
// proxy serves the shell under; asset URLs and redirects are built from it.
// It is empty when the shell is served from the origin root.
type AppConfig struct {
	BasePath string `toml:"base_path"`
}

// Finalize loads environment overrides and validates the app configuration.
func (c *AppConfig) Finalize() error {
	if v := os.Getenv(EnvAppBasePath); v != "" {
		c.BasePath = v
	}
	c.BasePath = strings.TrimSuffix(c.BasePath, "/")

	if c.BasePath != "" && !strings.HasPrefix(c.BasePath, "/") {
		return fmt.Errorf("base_path must start with /: %s", c.BasePath)
	}
	return nil
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *AppConfig) Merge(overlay *AppConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
}
