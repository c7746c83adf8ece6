// Package session provides credential storage behind an explicit Store
// interface. Callers receive a Store by injection; the package keeps no
// global state. Backends persist values in memory, as files, or in a SQL
// database.
package session

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
)

// DefaultKey is the key bearer tokens are stored under.
const DefaultKey = "token"

var (
	// ErrNotFound indicates no value is stored under the key.
	ErrNotFound = errors.New("session: key not found")

	// ErrInvalidKey indicates an empty key or one containing path traversal.
	ErrInvalidKey = errors.New("session: invalid key")
)

// Store persists credential strings by key.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any existing value.
	Set(ctx context.Context, key, value string) error

	// Clear removes key. Clearing a missing key is not an error.
	Clear(ctx context.Context, key string) error
}

// ValidateKey rejects keys that are empty, absolute, or escape their
// namespace.
func ValidateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrInvalidKey
	}
	if strings.ContainsAny(key, "\x00\\") || filepath.IsAbs(key) {
		return ErrInvalidKey
	}
	cleaned := filepath.Clean(key)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return ErrInvalidKey
	}
	return nil
}
