package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/parkease/pkg/middleware"
)

var devOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173"}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCORS(t *testing.T) {
	cfg := &middleware.CORSConfig{
		Enabled:          true,
		Origins:          devOrigins,
		AllowedMethods:   []string{"GET", "POST"},
		AllowedHeaders:   []string{"Authorization"},
		AllowCredentials: true,
		MaxAge:           7200,
	}

	tests := []struct {
		name       string
		enabled    bool
		origin     string
		wantOrigin string
	}{
		{"allowed origin", true, "http://localhost:5173", "http://localhost:5173"},
		{"second allowed origin", true, "http://127.0.0.1:5173", "http://127.0.0.1:5173"},
		{"disallowed origin", true, "http://evil.com", ""},
		{"no origin", true, "", ""},
		{"disabled", false, "http://localhost:5173", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := *cfg
			c.Enabled = tt.enabled
			wrapped := middleware.CORS(&c)(okHandler())

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			w := httptest.NewRecorder()

			wrapped.ServeHTTP(w, req)

			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.wantOrigin)
			}
			if tt.wantOrigin == "" {
				return
			}
			if got := w.Header().Get("Access-Control-Allow-Methods"); got != "GET, POST" {
				t.Errorf("Access-Control-Allow-Methods = %q, want %q", got, "GET, POST")
			}
			if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
				t.Errorf("Access-Control-Allow-Credentials = %q, want true", got)
			}
			if got := w.Header().Get("Access-Control-Max-Age"); got != "7200" {
				t.Errorf("Access-Control-Max-Age = %q, want 7200", got)
			}
		})
	}
}

func TestCORS_Preflight(t *testing.T) {
	cfg := &middleware.CORSConfig{Enabled: true, Origins: devOrigins}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	called := false
	wrapped := middleware.CORS(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/auth/profile", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()

	wrapped.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if called {
		t.Error("preflight should not reach the next handler")
	}
}

func TestCORSConfig_Finalize_Defaults(t *testing.T) {
	cfg := &middleware.CORSConfig{}

	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	if len(cfg.AllowedMethods) == 0 {
		t.Error("AllowedMethods should have defaults")
	}
	if len(cfg.AllowedHeaders) == 0 {
		t.Error("AllowedHeaders should have defaults")
	}
	if cfg.MaxAge != 3600 {
		t.Errorf("MaxAge = %d, want 3600", cfg.MaxAge)
	}
}

func TestCORSConfig_Finalize_EnvOverrides(t *testing.T) {
	t.Setenv("TEST_CORS_ENABLED", "true")
	t.Setenv("TEST_CORS_ORIGINS", "http://localhost:5173, http://127.0.0.1:5173")
	t.Setenv("TEST_CORS_MAX_AGE", "60")

	env := &middleware.CORSEnv{
		Enabled: "TEST_CORS_ENABLED",
		Origins: "TEST_CORS_ORIGINS",
		MaxAge:  "TEST_CORS_MAX_AGE",
	}

	cfg := &middleware.CORSConfig{}
	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if !cfg.Enabled {
		t.Error("Enabled should be overridden by env")
	}
	if len(cfg.Origins) != 2 || cfg.Origins[1] != "http://127.0.0.1:5173" {
		t.Errorf("Origins = %v, want trimmed dev origins", cfg.Origins)
	}
	if cfg.MaxAge != 60 {
		t.Errorf("MaxAge = %d, want 60", cfg.MaxAge)
	}
}

func TestCORSConfig_Merge(t *testing.T) {
	base := middleware.CORSConfig{Enabled: true, Origins: devOrigins, MaxAge: 3600}
	base.Merge(&middleware.CORSConfig{Enabled: false, MaxAge: 0})

	if base.Enabled {
		t.Error("Enabled should follow overlay")
	}
	if len(base.Origins) != 2 {
		t.Error("nil overlay Origins should keep base origins")
	}
	if base.MaxAge != 3600 {
		t.Errorf("MaxAge = %d, zero overlay should keep base", base.MaxAge)
	}
}
