package session_test

import (
	"testing"

	"github.com/JaimeStill/parkease/pkg/database"
	"github.com/JaimeStill/parkease/pkg/session"
)

func TestConfig_Finalize_Defaults(t *testing.T) {
	cfg := &session.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}

	if cfg.Backend != session.BackendFile {
		t.Errorf("Backend = %q, want %q", cfg.Backend, session.BackendFile)
	}
	if cfg.Path != ".data/session" {
		t.Errorf("Path = %q, want .data/session", cfg.Path)
	}
}

func TestConfig_Finalize_Env(t *testing.T) {
	t.Setenv("TEST_SESSION_BACKEND", "sqlite")
	t.Setenv("TEST_SESSION_DB_PATH", "/tmp/parkease-test.db")

	cfg := &session.Config{}
	env := &session.Env{
		Backend:  "TEST_SESSION_BACKEND",
		Database: &database.Env{Path: "TEST_SESSION_DB_PATH"},
	}
	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}

	if cfg.Backend != session.BackendSQLite {
		t.Errorf("Backend = %q, want sqlite", cfg.Backend)
	}
	if cfg.Database.Driver != database.DriverSQLite {
		t.Errorf("Database.Driver = %q, want sqlite", cfg.Database.Driver)
	}
	if cfg.Database.Path != "/tmp/parkease-test.db" {
		t.Errorf("Database.Path = %q", cfg.Database.Path)
	}
}

func TestConfig_Finalize_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  session.Config
	}{
		{"unknown backend", session.Config{Backend: "redis"}},
		{"postgres without name", session.Config{Backend: "postgres", Database: database.Config{User: "u"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Finalize(nil); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestConfig_Merge(t *testing.T) {
	base := &session.Config{Backend: "file", Path: "/base"}
	base.Merge(&session.Config{
		Backend:  "postgres",
		Database: database.Config{Name: "parkease"},
	})

	if base.Backend != "postgres" {
		t.Errorf("Backend = %q, want postgres", base.Backend)
	}
	if base.Path != "/base" {
		t.Errorf("Path = %q, want /base", base.Path)
	}
	if base.Database.Name != "parkease" {
		t.Errorf("Database.Name = %q, want parkease", base.Database.Name)
	}
}
