package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/parkease/internal/config"
	"github.com/JaimeStill/parkease/pkg/logging"
	"github.com/JaimeStill/parkease/pkg/session"
)

type options struct {
	configPath string
	baseURL    string
	token      string
	key        string
	clear      bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Check that a bearer token round-trips and authenticates",
		Long: `Stores a bearer token in the session store, reads it back, and calls
GET /api/auth/profile with it. Without a subcommand, probe runs the check.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProbe(cmd, opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", config.BaseConfigFile, "path to the base configuration file")
	flags.StringVar(&opts.baseURL, "base-url", "", "backend base URL (overrides probe.base_url)")
	flags.StringVar(&opts.token, "token", "", "token to store (overrides probe.token)")
	flags.StringVar(&opts.key, "key", "", "session key (overrides probe.key)")
	flags.BoolVar(&opts.clear, "clear", false, "clear the key after the run")

	cmd.AddCommand(
		newRunCmd(opts),
		newGetCmd(opts),
		newSetCmd(opts),
		newClearCmd(opts),
	)

	return cmd
}

// setup loads configuration, applies flag overrides, and builds the logger.
// Logs go to the command's stderr so stdout stays machine readable.
func setup(cmd *cobra.Command, opts *options) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("base-url") {
		cfg.Probe.BaseURL = opts.baseURL
	}
	if flags.Changed("token") {
		cfg.Probe.Token = opts.token
	}
	if flags.Changed("key") {
		cfg.Probe.Key = opts.key
	}
	if flags.Changed("clear") {
		cfg.Probe.Clear = opts.clear
	}

	if err := cfg.Finalize(); err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}

	logger := logging.NewWithWriter(&cfg.Logging, cmd.ErrOrStderr())
	return cfg, logger, nil
}

func withStore(cmd *cobra.Command, opts *options, fn func(ctx context.Context, cfg *config.Config, store session.Store, logger *slog.Logger) error) error {
	cfg, logger, err := setup(cmd, opts)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	store, closer, err := session.Open(ctx, &cfg.Session, logger)
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	defer closeQuietly(closer, logger)

	return fn(ctx, cfg, store, logger)
}

func closeQuietly(c io.Closer, logger *slog.Logger) {
	if err := c.Close(); err != nil {
		logger.Warn("failed to close session store", "error", err)
	}
}
