// Package routing provides an ordered, immutable route table that resolves
// request paths to views or redirects. Entries are compared in declaration
// order and the first match wins; duplicate patterns are allowed and
// resolved by that order.
package routing

import (
	"fmt"
	"strings"
)

// DefaultMaxHops is the maximum number of redirects Resolve follows when
// given a non-positive limit.
const DefaultMaxHops = 8

// Table is an ordered set of route entries. It is immutable after
// construction and safe for concurrent use.
type Table struct {
	entries []Entry
}

// New validates entries and returns a table that preserves their order.
func New(entries ...Entry) (*Table, error) {
	for i, e := range entries {
		if err := e.validate(); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}

	copied := make([]Entry, len(entries))
	copy(copied, entries)
	return &Table{entries: copied}, nil
}

// MustNew is like New but panics on invalid entries. It is intended for
// tables declared at package level.
func MustNew(entries ...Entry) *Table {
	t, err := New(entries...)
	if err != nil {
		panic(err)
	}
	return t
}

// Match returns the first entry whose pattern equals the normalized path.
func (t *Table) Match(path string) Outcome {
	p := normalize(path)
	for _, e := range t.entries {
		if e.Pattern != p {
			continue
		}
		if e.IsRedirect() {
			return Outcome{Kind: KindRedirect, Path: path, Entry: e}
		}
		return Outcome{Kind: KindView, Path: path, Entry: e}
	}
	return Outcome{Kind: KindNotFound, Path: path}
}

// Resolve follows redirects from path until a view or not-found outcome is
// reached. maxHops is the maximum number of redirects followed. The returned
// hops list every path visited, starting with path.
func (t *Table) Resolve(path string, maxHops int) (Outcome, []string, error) {
	if maxHops <= 0 {
		maxHops = DefaultMaxHops
	}
	hops := []string{path}
	seen := map[string]bool{normalize(path): true}

	out := t.Match(path)
	for out.Kind == KindRedirect {
		next := out.Entry.Redirect
		if len(hops) > maxHops || seen[normalize(next)] {
			return out, append(hops, next), fmt.Errorf("%w: %s", ErrRedirectLoop, strings.Join(append(hops, next), " -> "))
		}
		seen[normalize(next)] = true
		hops = append(hops, next)
		out = t.Match(next)
	}
	return out, hops, nil
}

// Lookup returns the first entry carrying the given name.
func (t *Table) Lookup(name string) (Entry, bool) {
	if name == "" {
		return Entry{}, false
	}
	for _, e := range t.entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Aliases returns, in declaration order, every pattern bound to view.
func (t *Table) Aliases(view string) []string {
	var patterns []string
	for _, e := range t.entries {
		if e.View == view {
			patterns = append(patterns, e.Pattern)
		}
	}
	return patterns
}

// Views returns the distinct view identifiers referenced by the table in
// order of first appearance.
func (t *Table) Views() []string {
	seen := make(map[string]bool)
	var views []string
	for _, e := range t.entries {
		if e.View != "" && !seen[e.View] {
			seen[e.View] = true
			views = append(views, e.View)
		}
	}
	return views
}

// Entries returns a copy of the table's entries.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Shadowed returns entries that can never match because an earlier entry
// declares the same pattern.
func (t *Table) Shadowed() []Entry {
	seen := make(map[string]bool, len(t.entries))
	var shadowed []Entry
	for _, e := range t.entries {
		if seen[e.Pattern] {
			shadowed = append(shadowed, e)
			continue
		}
		seen[e.Pattern] = true
	}
	return shadowed
}

// normalize strips any query or fragment and a trailing slash. The root
// path is preserved.
func normalize(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "/"
	}
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		path = strings.TrimRight(path, "/")
		if path == "" {
			return "/"
		}
	}
	return path
}
