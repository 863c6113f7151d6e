package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hyperifyio/styleguard/internal/app"
	"github.com/hyperifyio/styleguard/internal/server"
)

func newScorerCmd(f *rootFlags, name, short string) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <file|glob>...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd, f, app.Config{Command: name, Inputs: args})
			if err != nil {
				return &exitError{code: 2, err: err}
			}
			a, err := app.New(cfg)
			if err != nil {
				return &exitError{code: 2, err: err}
			}
			valid, err := a.Run(cmd.Context(), cmd.OutOrStdout())
			if code := app.ExitCode(valid, err); code != 0 {
				return &exitError{code: code, err: err}
			}
			return nil
		},
	}
}

func newServeCmd(f *rootFlags) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the checks over HTTP",
		Long:  "Start an HTTP server exposing every check under /api and Prometheus metrics under /metrics.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			base := app.Config{Command: app.CommandServe}
			if cmd.Flags().Changed("addr") {
				base.Addr = addr
			}
			cfg, err := buildConfig(cmd, f, base)
			if err != nil {
				return &exitError{code: 2, err: err}
			}
			a, err := app.New(cfg)
			if err != nil {
				return &exitError{code: 2, err: err}
			}
			srv := server.New(server.Config{
				Addr:        cfg.Addr,
				Version:     app.BuildVersion,
				ContentType: a.ContentType(),
			}, a.Rules())

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if err := srv.Run(ctx); err != nil {
				return &exitError{code: 2, err: err}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default :8080)")
	return cmd
}

func newWatchCmd(f *rootFlags) *cobra.Command {
	var debounce string
	cmd := &cobra.Command{
		Use:   "watch <dir|file|glob>...",
		Short: "Re-check drafts whenever they change",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base := app.Config{Command: app.CommandWatch, Inputs: args}
			if cmd.Flags().Changed("debounce") {
				d, err := time.ParseDuration(debounce)
				if err != nil {
					return &exitError{code: 2, err: fmt.Errorf("--debounce: %w", err)}
				}
				base.Debounce = d
			}
			cfg, err := buildConfig(cmd, f, base)
			if err != nil {
				return &exitError{code: 2, err: err}
			}
			a, err := app.New(cfg)
			if err != nil {
				return &exitError{code: 2, err: err}
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if err := a.Watch(ctx, cmd.OutOrStdout()); err != nil {
				return &exitError{code: 2, err: err}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&debounce, "debounce", "", "Quiet period before re-checking, e.g. 500ms")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), app.VersionString())
		},
	}
}
