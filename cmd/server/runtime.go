package main

import (
	"log/slog"

	"github.com/JaimeStill/parkease/internal/config"
	"github.com/JaimeStill/parkease/pkg/lifecycle"
	"github.com/JaimeStill/parkease/pkg/logging"
)

// Runtime holds the process-wide systems shared by every module.
type Runtime struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
}

func NewRuntime(cfg *config.Config) *Runtime {
	return &Runtime{
		Lifecycle: lifecycle.New(),
		Logger:    logging.New(&cfg.Logging),
	}
}
