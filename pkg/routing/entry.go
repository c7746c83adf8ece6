package routing

import (
	"fmt"
	"strings"
)

// Entry binds a literal path pattern to either a redirect target or a view.
// Exactly one of Redirect and View is set.
type Entry struct {
	Pattern  string `json:"pattern"`
	Redirect string `json:"redirect,omitempty"`
	View     string `json:"view,omitempty"`
	Name     string `json:"name,omitempty"`
}

// IsRedirect reports whether the entry redirects instead of rendering a view.
func (e Entry) IsRedirect() bool {
	return e.Redirect != ""
}

func (e Entry) validate() error {
	if !strings.HasPrefix(e.Pattern, "/") {
		return fmt.Errorf("%w: pattern %q must start with /", ErrInvalidEntry, e.Pattern)
	}
	if normalize(e.Pattern) != e.Pattern {
		return fmt.Errorf("%w: pattern %q must not carry a trailing slash, query, or fragment", ErrInvalidEntry, e.Pattern)
	}
	switch {
	case e.Redirect != "" && e.View != "":
		return fmt.Errorf("%w: %s sets both redirect and view", ErrInvalidEntry, e.Pattern)
	case e.Redirect == "" && e.View == "":
		return fmt.Errorf("%w: %s sets neither redirect nor view", ErrInvalidEntry, e.Pattern)
	case e.Redirect != "" && !strings.HasPrefix(e.Redirect, "/"):
		return fmt.Errorf("%w: redirect %q must start with /", ErrInvalidEntry, e.Redirect)
	}
	return nil
}

// Kind classifies the result of matching a path.
type Kind int

const (
	KindNotFound Kind = iota
	KindView
	KindRedirect
)

func (k Kind) String() string {
	switch k {
	case KindView:
		return "view"
	case KindRedirect:
		return "redirect"
	default:
		return "not_found"
	}
}

// MarshalText encodes the kind as its string form.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Outcome is the result of matching a requested path against a table.
// Entry is the zero value when Kind is KindNotFound.
type Outcome struct {
	Kind  Kind   `json:"kind"`
	Path  string `json:"path"`
	Entry Entry  `json:"entry"`
}

// Matcher resolves a request path to an outcome. Dispatchers depend on this
// interface rather than a concrete table.
type Matcher interface {
	Match(path string) Outcome
}
