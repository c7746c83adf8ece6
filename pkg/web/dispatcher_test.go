package web_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/parkease/pkg/routing"
	"github.com/JaimeStill/parkease/pkg/web"
)

var dispatchTable = routing.MustNew(
	routing.Entry{Pattern: "/account", Redirect: "/account/login"},
	routing.Entry{Pattern: "/account/login", View: "Login"},
	routing.Entry{Pattern: "/account-login", View: "Login"},
	routing.Entry{Pattern: "/", View: "Home"},
)

func newDispatcher(t *testing.T) *web.Dispatcher {
	t.Helper()
	ts := newTemplateSet(t)
	d, err := web.NewDispatcher(
		dispatchTable,
		ts,
		"test.html",
		testViews,
		ts.ErrorHandler("test.html", notFoundView, http.StatusNotFound),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	if err != nil {
		t.Fatalf("NewDispatcher() error = %v", err)
	}
	return d
}

func TestNewDispatcher_UndefinedView(t *testing.T) {
	ts := newTemplateSet(t)
	table := routing.MustNew(routing.Entry{Pattern: "/x", View: "Unknown"})

	_, err := web.NewDispatcher(table, ts, "test.html", testViews, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err == nil {
		t.Error("NewDispatcher() with undefined view should return error")
	}
}

func TestNewDispatcher_UnparsedTemplate(t *testing.T) {
	ts := newTemplateSet(t)
	views := []web.ViewDef{{Name: "Home", Template: "unparsed.html"}}

	_, err := web.NewDispatcher(routing.MustNew(), ts, "test.html", views, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err == nil {
		t.Error("NewDispatcher() with unparsed template should return error")
	}
}

func TestDispatcher_Redirect(t *testing.T) {
	d := newDispatcher(t)

	tests := []struct {
		target   string
		location string
	}{
		{"/account", "/account/login"},
		{"/account?next=dashboard", "/account/login?next=dashboard"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			w := httptest.NewRecorder()

			d.ServeHTTP(w, req)

			if w.Code != http.StatusFound {
				t.Errorf("status = %d, want %d", w.Code, http.StatusFound)
			}
			if loc := w.Header().Get("Location"); loc != tt.location {
				t.Errorf("Location = %q, want %q", loc, tt.location)
			}
		})
	}
}

func TestDispatcher_Aliases(t *testing.T) {
	d := newDispatcher(t)

	var bodies []string
	for _, path := range []string{"/account/login", "/account-login"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()

		d.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("%s: status = %d, want %d", path, w.Code, http.StatusOK)
		}

		body, _ := io.ReadAll(w.Result().Body)
		if !strings.Contains(string(body), `data-view="Login"`) {
			t.Errorf("%s: response does not render Login view", path)
		}
		bodies = append(bodies, strings.ReplaceAll(string(body), path, ""))
	}

	if bodies[0] != bodies[1] {
		t.Error("aliases rendered different documents")
	}
}

func TestDispatcher_Root(t *testing.T) {
	d := newDispatcher(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	d.ServeHTTP(w, req)

	body, _ := io.ReadAll(w.Result().Body)
	if !strings.Contains(string(body), "Home Page") {
		t.Error("root did not render Home view")
	}
}

func TestDispatcher_NotFound(t *testing.T) {
	d := newDispatcher(t)

	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	w := httptest.NewRecorder()

	d.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}

	body, _ := io.ReadAll(w.Result().Body)
	if !strings.Contains(string(body), "Page Not Found") {
		t.Error("response does not contain 404 view")
	}
}

func TestDispatcher_MethodNotAllowed(t *testing.T) {
	d := newDispatcher(t)

	req := httptest.NewRequest(http.MethodPost, "/account/login", nil)
	w := httptest.NewRecorder()

	d.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", w.Code, http.StatusMethodNotAllowed)
	}
	if allow := w.Header().Get("Allow"); allow != "GET, HEAD" {
		t.Errorf("Allow = %q, want %q", allow, "GET, HEAD")
	}
}
