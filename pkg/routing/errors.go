package routing

import "errors"

var (
	// ErrInvalidEntry indicates an entry with a malformed pattern or target.
	ErrInvalidEntry = errors.New("routing: invalid entry")

	// ErrRedirectLoop indicates a redirect chain that revisits a path or
	// exceeds the hop limit.
	ErrRedirectLoop = errors.New("routing: redirect loop")
)
