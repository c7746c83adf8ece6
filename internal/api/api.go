// Package api assembles the /api module: route table introspection plus
// forwarding of every other /api request to the backend service.
package api

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/parkease/internal/config"
	"github.com/JaimeStill/parkease/pkg/middleware"
	"github.com/JaimeStill/parkease/pkg/module"
	"github.com/JaimeStill/parkease/pkg/routes"
	"github.com/JaimeStill/parkease/pkg/routing"
)

// BasePath is the mount prefix of the API module.
const BasePath = "/api"

// NewModule builds the API module over the application route table.
func NewModule(cfg *config.Config, table *routing.Table, logger *slog.Logger) *module.Module {
	logger = logger.With("module", "api")

	mux := http.NewServeMux()
	registerRoutes(mux, table, cfg, logger)

	m := module.New(BasePath, mux)
	m.Use(middleware.Logger(logger))
	return m
}

func registerRoutes(mux *http.ServeMux, table *routing.Table, cfg *config.Config, logger *slog.Logger) {
	tableHandler := NewHandler(table, cfg.API.MaxRedirectHops, logger)
	routes.Register(mux, tableHandler.Routes())

	if upstream := cfg.API.UpstreamURL(); upstream != nil {
		mux.Handle("/", newProxy(upstream, BasePath, logger))
		logger.Info("forwarding unhandled api requests", "upstream", upstream.String())
		return
	}
	mux.HandleFunc("/", notFound(logger))
}
