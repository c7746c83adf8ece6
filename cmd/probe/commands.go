package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/parkease/internal/config"
	"github.com/JaimeStill/parkease/pkg/probe"
	"github.com/JaimeStill/parkease/pkg/session"
)

func newRunCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Store the token, read it back, and fetch the profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProbe(cmd, opts)
		},
	}
}

func runProbe(cmd *cobra.Command, opts *options) error {
	return withStore(cmd, opts, func(ctx context.Context, cfg *config.Config, store session.Store, logger *slog.Logger) error {
		p := probe.New(store, &http.Client{}, &cfg.Probe, logger)

		result, err := p.Run(ctx)
		if result != nil {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if encErr := enc.Encode(result); encErr != nil && err == nil {
				return encErr
			}
		}
		if err != nil {
			logger.Error("probe failed", "error", err)
			return err
		}

		if !result.Match {
			return fmt.Errorf("stored and retrieved tokens differ")
		}
		return nil
	})
}

func newGetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Print the stored token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, opts, func(ctx context.Context, cfg *config.Config, store session.Store, logger *slog.Logger) error {
				value, err := store.Get(ctx, cfg.Probe.Key)
				if err != nil {
					return fmt.Errorf("get %s: %w", cfg.Probe.Key, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), value)
				return nil
			})
		},
	}
}

func newSetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "set <value>",
		Short: "Store a token under the configured key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, opts, func(ctx context.Context, cfg *config.Config, store session.Store, logger *slog.Logger) error {
				if err := store.Set(ctx, cfg.Probe.Key, args[0]); err != nil {
					return fmt.Errorf("set %s: %w", cfg.Probe.Key, err)
				}
				logger.Info("token stored", "key", cfg.Probe.Key)
				return nil
			})
		},
	}
}

func newClearCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove the token stored under the configured key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, opts, func(ctx context.Context, cfg *config.Config, store session.Store, logger *slog.Logger) error {
				if err := store.Clear(ctx, cfg.Probe.Key); err != nil {
					return fmt.Errorf("clear %s: %w", cfg.Probe.Key, err)
				}
				logger.Info("token cleared", "key", cfg.Probe.Key)
				return nil
			})
		},
	}
}
