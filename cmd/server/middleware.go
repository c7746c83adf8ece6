package main

import (
	"github.com/JaimeStill/parkease/internal/config"
	"github.com/JaimeStill/parkease/pkg/middleware"
)

// buildMiddleware creates the stack shared by every route. Request ids are
// assigned first so module loggers can read them.
func buildMiddleware(cfg *config.Config) middleware.System {
	sys := middleware.New()
	sys.Use(middleware.RequestID())
	sys.Use(middleware.TrimSlash(cfg.App.BasePath))
	sys.Use(middleware.CORS(&cfg.CORS))
	return sys
}
