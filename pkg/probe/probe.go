// Package probe runs the bearer token smoke test: it writes a token to a
// session store, reads it back, and calls the profile endpoint with it.
package probe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/docker/go-units"

	"github.com/JaimeStill/parkease/pkg/decode"
	"github.com/JaimeStill/parkease/pkg/session"
)

// Result records one probe run.
type Result struct {
	Token     string         `json:"token"`
	Retrieved string         `json:"retrieved"`
	Match     bool           `json:"match"`
	Status    int            `json:"status"`
	Profile   *Profile       `json:"profile,omitempty"`
	Message   string         `json:"message,omitempty"`
	Body      map[string]any `json:"body,omitempty"`
	Duration  time.Duration  `json:"duration"`
}

// Probe executes the token round trip against an injected store.
type Probe struct {
	store  session.Store
	client *http.Client
	cfg    *Config
	logger *slog.Logger
}

// New creates a probe. A nil client uses http.DefaultClient; cfg must be finalized.
func New(store session.Store, client *http.Client, cfg *Config, logger *slog.Logger) *Probe {
	if client == nil {
		client = http.DefaultClient
	}
	return &Probe{
		store:  store,
		client: client,
		cfg:    cfg,
		logger: logger.With("system", "probe"),
	}
}

// Run performs a single probe. It does not retry. A missing profile in the
// response is reported through a nil Result.Profile, not an error.
func (p *Probe) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	result := &Result{Token: p.cfg.Token}

	if err := p.store.Set(ctx, p.cfg.Key, p.cfg.Token); err != nil {
		return nil, fmt.Errorf("%w: set %s: %w", ErrStore, p.cfg.Key, err)
	}

	if p.cfg.Clear {
		defer func() {
			if err := p.store.Clear(context.WithoutCancel(ctx), p.cfg.Key); err != nil {
				p.logger.Warn("failed to clear token", "key", p.cfg.Key, "error", err)
			}
		}()
	}

	retrieved, err := p.store.Get(ctx, p.cfg.Key)
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %w", ErrStore, p.cfg.Key, err)
	}
	result.Retrieved = retrieved
	result.Match = p.cfg.Token == retrieved

	p.logger.Info("token round trip",
		"stored", p.cfg.Token,
		"retrieved", retrieved,
		"match", result.Match,
	)

	status, body, err := p.fetch(ctx, retrieved)
	result.Duration = time.Since(start)
	result.Status = status
	if err != nil {
		return result, err
	}

	if err := p.decodeBody(body, result); err != nil {
		return result, err
	}

	p.logger.Info("profile response", "status", status, "body", result.Body)
	if result.Profile != nil {
		p.logger.Info("profile user", "full_name", result.Profile.FullName)
	}

	return result, nil
}

func (p *Probe) fetch(ctx context.Context, token string) (int, []byte, error) {
	reqCtx, cancel := context.WithTimeout(ctx, p.cfg.TimeoutDuration())
	defer cancel()

	endpoint := strings.TrimSuffix(p.cfg.BaseURL, "/") + ProfilePath
	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %w", ErrRequest, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %w", ErrRequest, err)
	}
	defer resp.Body.Close()

	limit := p.cfg.MaxBodySizeBytes()
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("%w: read body: %w", ErrRequest, err)
	}
	if int64(len(body)) > limit {
		return resp.StatusCode, nil, fmt.Errorf(
			"%w: body exceeds %s", ErrDecode, units.HumanSize(float64(limit)),
		)
	}

	return resp.StatusCode, body, nil
}

func (p *Probe) decodeBody(body []byte, result *Result) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return fmt.Errorf("%w: empty body (status %d)", ErrDecode, result.Status)
	}

	if err := json.Unmarshal(body, &result.Body); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if result.Body == nil {
		return fmt.Errorf("%w: null body (status %d)", ErrDecode, result.Status)
	}

	if msg, ok := result.Body["message"].(string); ok {
		result.Message = msg
	}

	profile, ok, err := decode.Field[Profile](result.Body, "profile")
	var typeErr *json.UnmarshalTypeError
	switch {
	case err == nil:
	case errors.Is(err, decode.ErrNotObject):
		if raw := result.Body["profile"]; truthy(raw) {
			p.logger.Warn("profile is not an object, skipping", "profile", raw)
		}
	case errors.As(err, &typeErr):
		p.logger.Warn("profile field type mismatch", "field", typeErr.Field, "error", err)
	default:
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if ok {
		result.Profile = &profile
	}
	return nil
}

// truthy reports whether a decoded JSON value counts as present: false, "",
// 0 and null do not.
func truthy(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case float64:
		return v != 0
	default:
		return true
	}
}
