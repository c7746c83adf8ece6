package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
)

const (
	// EnvAPIUpstream overrides the backend that unhandled /api requests are forwarded to.
	EnvAPIUpstream = "API_UPSTREAM"

	// EnvAPIMaxRedirectHops overrides the hop limit for route resolution.
	EnvAPIMaxRedirectHops = "API_MAX_REDIRECT_HOPS"
)

// APIConfig configures the /api module.
type APIConfig struct {
	Upstream        string `toml:"upstream"`
	MaxRedirectHops int    `toml:"max_redirect_hops"`
}

// UpstreamURL returns the parsed upstream, or nil when forwarding is disabled.
func (c *APIConfig) UpstreamURL() *url.URL {
	if c.Upstream == "" {
		return nil
	}
	u, _ := url.Parse(c.Upstream)
	return u
}

// Finalize applies defaults, loads environment overrides, and validates the API configuration.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.Upstream != "" {
		c.Upstream = overlay.Upstream
	}
	if overlay.MaxRedirectHops != 0 {
		c.MaxRedirectHops = overlay.MaxRedirectHops
	}
}

func (c *APIConfig) loadDefaults() {
	if c.MaxRedirectHops == 0 {
		c.MaxRedirectHops = 8
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv(EnvAPIUpstream); v != "" {
		c.Upstream = v
	}
	if v := os.Getenv(EnvAPIMaxRedirectHops); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxRedirectHops = n
		}
	}
}

func (c *APIConfig) validate() error {
	if c.MaxRedirectHops < 1 {
		return fmt.Errorf("max_redirect_hops must be positive")
	}
	if c.Upstream == "" {
		return nil
	}

	u, err := url.Parse(c.Upstream)
	if err != nil {
		return fmt.Errorf("invalid upstream: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("upstream must be an absolute http(s) URL: %s", c.Upstream)
	}
	return nil
}
