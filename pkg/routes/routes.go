// Package routes describes HTTP routes as data so handlers can publish their
// endpoints and callers can register them on a mux in one place.
package routes

import "net/http"

// Route binds a method and pattern to a handler. Pattern is relative to the
// enclosing Group prefix.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// Group is a collection of routes under a common URL prefix.
type Group struct {
	Prefix      string
	Description string
	Routes      []Route
}

// Register adds every route of every group to mux using Go 1.22 method
// patterns ("GET /prefix/pattern").
func Register(mux *http.ServeMux, groups ...Group) {
	for _, g := range groups {
		for _, r := range g.Routes {
			mux.HandleFunc(r.Method+" "+g.Prefix+r.Pattern, r.Handler)
		}
	}
}

// Patterns lists the registered form of every route, in order.
func Patterns(groups ...Group) []string {
	var out []string
	for _, g := range groups {
		for _, r := range g.Routes {
			out = append(out, r.Method+" "+g.Prefix+r.Pattern)
		}
	}
	return out
}
