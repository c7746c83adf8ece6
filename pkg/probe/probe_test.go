package probe_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/JaimeStill/parkease/pkg/logging"
	"github.com/JaimeStill/parkease/pkg/probe"
	"github.com/JaimeStill/parkease/pkg/session"
)

func newProbe(t *testing.T, srv *httptest.Server, store session.Store, mutate func(*probe.Config)) *probe.Probe {
	t.Helper()

	cfg := &probe.Config{BaseURL: srv.URL}
	if mutate != nil {
		mutate(cfg)
	}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}
	return probe.New(store, srv.Client(), cfg, logging.Discard())
}

func TestRun_SendsBearerToken(t *testing.T) {
	var gotAuth, gotAccept, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"profile":{"id":2,"email":"a@b.c","full_name":"Asha Rao","city":"Pune"},"type":"user"}`))
	}))
	defer srv.Close()

	store := session.NewMemory()
	result, err := newProbe(t, srv, store, nil).Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if gotPath != probe.ProfilePath {
		t.Errorf("path = %q, want %q", gotPath, probe.ProfilePath)
	}
	if want := "Bearer " + probe.DefaultToken; gotAuth != want {
		t.Errorf("Authorization = %q, want %q", gotAuth, want)
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q, want application/json", gotAccept)
	}

	if !result.Match {
		t.Error("Match = false, want true")
	}
	if result.Status != http.StatusOK {
		t.Errorf("Status = %d, want 200", result.Status)
	}

	want := &probe.Profile{ID: 2, Email: "a@b.c", FullName: "Asha Rao", City: "Pune"}
	if diff := cmp.Diff(want, result.Profile); diff != "" {
		t.Errorf("Profile mismatch (-want +got):\n%s", diff)
	}

	stored, err := store.Get(context.Background(), session.DefaultKey)
	if err != nil {
		t.Fatalf("token should remain stored: %v", err)
	}
	if stored != probe.DefaultToken {
		t.Errorf("stored = %q, want %q", stored, probe.DefaultToken)
	}
}

func TestRun_ProfileNotObject(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"false", `{"profile":false}`},
		{"empty string", `{"profile":""}`},
		{"zero", `{"profile":0}`},
		{"string", `{"profile":"x"}`},
		{"array", `{"profile":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			result, err := newProbe(t, srv, session.NewMemory(), nil).Run(context.Background())
			if err != nil {
				t.Fatalf("Run failed: %v", err)
			}
			if result.Profile != nil {
				t.Errorf("Profile = %+v, want nil", result.Profile)
			}
			if _, ok := result.Body["profile"]; !ok {
				t.Errorf("Body = %v, want profile key kept", result.Body)
			}
		})
	}
}

func TestRun_MissingProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid token"}`))
	}))
	defer srv.Close()

	result, err := newProbe(t, srv, session.NewMemory(), nil).Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.Profile != nil {
		t.Errorf("Profile = %+v, want nil", result.Profile)
	}
	if result.Status != http.StatusUnauthorized {
		t.Errorf("Status = %d, want 401", result.Status)
	}
	if result.Message != "Invalid token" {
		t.Errorf("Message = %q, want %q", result.Message, "Invalid token")
	}
	if result.Body["message"] != "Invalid token" {
		t.Errorf("Body = %v", result.Body)
	}
}

func TestRun_DecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `<html>not json</html>`},
		{"empty body", ``},
		{"array body", `[1,2,3]`},
		{"null body", `null`},
		{"oversize body", `{"pad":"` + strings.Repeat("x", 2048) + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			p := newProbe(t, srv, session.NewMemory(), func(c *probe.Config) {
				c.MaxBodySize = "1KB"
			})

			_, err := p.Run(context.Background())
			if !errors.Is(err, probe.ErrDecode) {
				t.Errorf("error = %v, want ErrDecode", err)
			}
		})
	}
}

func TestRun_OversizeBodyKeepsStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte(strings.Repeat("x", 2048)))
	}))
	defer srv.Close()

	p := newProbe(t, srv, session.NewMemory(), func(c *probe.Config) {
		c.MaxBodySize = "1KB"
	})

	result, err := p.Run(context.Background())
	if !errors.Is(err, probe.ErrDecode) {
		t.Fatalf("error = %v, want ErrDecode", err)
	}
	if result == nil || result.Status != http.StatusAccepted {
		t.Errorf("result = %+v, want status 202", result)
	}
}

func TestRun_FieldTypeMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"profile":{"full_name":"Asha Rao","pin_code":411001},"type":"user"}`))
	}))
	defer srv.Close()

	result, err := newProbe(t, srv, session.NewMemory(), nil).Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Profile == nil || result.Profile.FullName != "Asha Rao" {
		t.Errorf("Profile = %+v, want full_name decoded", result.Profile)
	}
}

func TestRun_RequestError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	p := newProbe(t, srv, session.NewMemory(), nil)
	srv.Close()

	result, err := p.Run(context.Background())
	if !errors.Is(err, probe.ErrRequest) {
		t.Fatalf("error = %v, want ErrRequest", err)
	}
	if result == nil || !result.Match {
		t.Error("round trip result should be reported alongside request errors")
	}
}

func TestRun_Clear(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	store := session.NewMemory()
	p := newProbe(t, srv, store, func(c *probe.Config) {
		c.Clear = true
		c.Key = "probe-token"
	})

	if _, err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if _, err := store.Get(context.Background(), "probe-token"); !errors.Is(err, session.ErrNotFound) {
		t.Errorf("Get after clear error = %v, want ErrNotFound", err)
	}
}

type failingStore struct{ session.Store }

func (failingStore) Set(context.Context, string, string) error {
	return errors.New("disk full")
}

func TestRun_StoreError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("profile endpoint should not be called")
	}))
	defer srv.Close()

	_, err := newProbe(t, srv, failingStore{session.NewMemory()}, nil).Run(context.Background())
	if !errors.Is(err, probe.ErrStore) {
		t.Errorf("error = %v, want ErrStore", err)
	}
}
