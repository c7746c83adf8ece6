// Package module provides prefix-mounted HTTP modules with their own
// middleware chains, composed by a top-level Router.
package module

import (
	"fmt"
	"net/http"
	"strings"
)

// Module is an HTTP handler mounted under a single-segment path prefix.
// Requests reach the handler with the prefix stripped.
type Module struct {
	prefix      string
	handler     http.Handler
	middlewares []func(http.Handler) http.Handler
}

// New creates a module for prefix. The prefix must be a single path segment
// with a leading slash (for example "/api"); anything else panics.
func New(prefix string, handler http.Handler) *Module {
	if err := validatePrefix(prefix); err != nil {
		panic(err)
	}
	return &Module{
		prefix:  prefix,
		handler: handler,
	}
}

// Prefix returns the module's mount prefix.
func (m *Module) Prefix() string {
	return m.prefix
}

// Use appends middleware. Middleware registered first runs outermost.
func (m *Module) Use(mw func(http.Handler) http.Handler) {
	m.middlewares = append(m.middlewares, mw)
}

// Handler returns the module handler wrapped in its middleware.
func (m *Module) Handler() http.Handler {
	return chain(m.handler, m.middlewares)
}

// Serve strips the module prefix from the request path and serves it.
func (m *Module) Serve(w http.ResponseWriter, r *http.Request) {
	r2 := r.Clone(r.Context())
	r2.URL.Path = stripPrefix(r.URL.Path, m.prefix)
	if r.URL.RawPath != "" {
		r2.URL.RawPath = stripPrefix(r.URL.RawPath, m.prefix)
	}
	m.Handler().ServeHTTP(w, r2)
}

func chain(h http.Handler, middlewares []func(http.Handler) http.Handler) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

func stripPrefix(path, prefix string) string {
	p := strings.TrimPrefix(path, prefix)
	if p == "" {
		return "/"
	}
	return p
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("module prefix required")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("module prefix %q must start with /", prefix)
	}
	if strings.Count(prefix, "/") != 1 || len(prefix) == 1 {
		return fmt.Errorf("module prefix %q must be a single path segment", prefix)
	}
	return nil
}
