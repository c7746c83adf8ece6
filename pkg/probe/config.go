package probe

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/docker/go-units"

	"github.com/JaimeStill/parkease/pkg/session"
)

// DefaultToken is the diagnostic bearer token. Its shape is user_<id>_<timestamp>.
const DefaultToken = "user_2_1234567890"

// Config contains profile probe configuration.
type Config struct {
	BaseURL        string `toml:"base_url"`
	Token          string `toml:"token"`
	Key            string `toml:"key"`
	Timeout        string `toml:"timeout"`
	MaxBodySize    string `toml:"max_body_size"`
	Clear          bool   `toml:"clear"`
	maxBodySizeVal int64
}

// Env maps environment variable names for probe configuration.
type Env struct {
	BaseURL     string
	Token       string
	Key         string
	Timeout     string
	MaxBodySize string
	Clear       string
}

// TimeoutDuration parses and returns the request timeout as a time.Duration.
func (c *Config) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// MaxBodySizeBytes returns the validated response body limit.
func (c *Config) MaxBodySizeBytes() int64 {
	return c.maxBodySizeVal
}

// Finalize applies defaults, loads environment overrides, and validates the probe configuration.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *Config) Merge(overlay *Config) {
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.Token != "" {
		c.Token = overlay.Token
	}
	if overlay.Key != "" {
		c.Key = overlay.Key
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
	if size, err := units.FromHumanSize(overlay.MaxBodySize); err == nil {
		c.MaxBodySize = overlay.MaxBodySize
		c.maxBodySizeVal = size
	}
	if overlay.Clear {
		c.Clear = true
	}
}

func (c *Config) loadDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "http://localhost:5001"
	}
	if c.Token == "" {
		c.Token = DefaultToken
	}
	if c.Key == "" {
		c.Key = session.DefaultKey
	}
	if c.Timeout == "" {
		c.Timeout = "10s"
	}
	if c.MaxBodySize == "" {
		c.MaxBodySize = "1MB"
	}
}

func (c *Config) loadEnv(env *Env) {
	set := func(name string, dst *string) {
		if name == "" {
			return
		}
		if v := os.Getenv(name); v != "" {
			*dst = v
		}
	}

	set(env.BaseURL, &c.BaseURL)
	set(env.Token, &c.Token)
	set(env.Key, &c.Key)
	set(env.Timeout, &c.Timeout)
	set(env.MaxBodySize, &c.MaxBodySize)

	if env.Clear != "" {
		if v := os.Getenv(env.Clear); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				c.Clear = b
			}
		}
	}
}

func (c *Config) validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base_url must use http or https: %s", c.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("base_url host required")
	}

	if err := session.ValidateKey(c.Key); err != nil {
		return fmt.Errorf("key: %w", err)
	}

	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("timeout must be positive")
	}

	size, err := units.FromHumanSize(c.MaxBodySize)
	if err != nil {
		return fmt.Errorf("invalid max_body_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_body_size must be positive")
	}
	c.maxBodySizeVal = size

	return nil
}
