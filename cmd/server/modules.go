package main

import (
	"net/http"

	"github.com/JaimeStill/parkease/internal/api"
	"github.com/JaimeStill/parkease/internal/config"
	"github.com/JaimeStill/parkease/pkg/lifecycle"
	"github.com/JaimeStill/parkease/pkg/middleware"
	"github.com/JaimeStill/parkease/pkg/module"
	"github.com/JaimeStill/parkease/web/app"
)

// Modules holds the handlers mounted on the top-level router.
type Modules struct {
	API *module.Module
	App http.Handler
}

func NewModules(runtime *Runtime, cfg *config.Config) (*Modules, error) {
	apiModule := api.NewModule(cfg, app.Routes(), runtime.Logger)

	appHandler, err := app.NewHandler(cfg.App.BasePath, runtime.Logger)
	if err != nil {
		return nil, err
	}

	appMiddleware := middleware.New()
	appMiddleware.Use(middleware.Logger(runtime.Logger.With("module", "app")))

	return &Modules{
		API: apiModule,
		App: appMiddleware.Apply(appHandler),
	}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
	router.MountRoot(m.App)
}

func buildRouter(runtime *Runtime) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", handleHealthCheck)
	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		handleReadinessCheck(w, runtime.Lifecycle)
	})

	return router
}

func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func handleReadinessCheck(w http.ResponseWriter, ready lifecycle.ReadinessChecker) {
	if !ready.Ready() {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("NOT READY"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("READY"))
}
