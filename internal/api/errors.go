package api

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/parkease/pkg/routing"
)

var (
	ErrPathRequired = errors.New("path query parameter required")
	ErrNotFound     = errors.New("endpoint not found")
	ErrUpstream     = errors.New("upstream unavailable")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrPathRequired):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, routing.ErrRedirectLoop):
		return http.StatusLoopDetected
	case errors.Is(err, ErrUpstream):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
