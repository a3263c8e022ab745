package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/device-management-toolkit/redfish-inventory/config"
	"github.com/device-management-toolkit/redfish-inventory/internal/app"
	"github.com/device-management-toolkit/redfish-inventory/pkg/httpserver"
	"github.com/device-management-toolkit/redfish-inventory/pkg/logger"
)

// Function pointers for better testability.
var (
	initializeConfigFunc = config.NewConfig
	newLoggerFunc        = app.NewLogger
	discoverFunc         = app.Discover
	watchFunc            = func(ctx context.Context, cfg *config.Config, log logger.Interface) error {
		return app.Watch(ctx, cfg, log)
	}
	serveFixtureFunc = func(ctx context.Context, cfg *config.Config, log logger.Interface, params app.FixtureParams) error {
		return app.ServeFixture(ctx, cfg, log, params, httpserver.ShutdownTimeout(time.Second))
	}
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd().ExecuteContext(ctx)

	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "redfish-inventory",
		Short:         "Discovers chassis and computer systems from a Redfish service.",
		Version:       app.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config.yml (default: config/config.yml next to the executable)")

	load := func() (*config.Config, logger.Interface, error) {
		cfg, err := initializeConfigFunc(configPath)
		if err != nil {
			return nil, nil, fmt.Errorf("config error: %w", err)
		}

		cfg.App.Version = app.Version

		return cfg, newLoggerFunc(cfg), nil
	}

	root.AddCommand(
		newDiscoverCmd(load),
		newWatchCmd(load),
		newFixtureCmd(load),
	)

	return root
}

type loader func() (*config.Config, logger.Interface, error)

func newDiscoverCmd(load loader) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "discover",
		Short: "Run one discovery and print the snapshot as JSON.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := load()
			if err != nil {
				return err
			}

			var out io.Writer = cmd.OutOrStdout()

			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()

				out = f
			}

			return discoverFunc(cmd.Context(), cfg, log, out)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "-", "file to write the snapshot to")

	return cmd
}

func newWatchCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Rediscover periodically and serve the latest snapshot, health, and metrics over HTTP.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := load()
			if err != nil {
				return err
			}

			return watchFunc(cmd.Context(), cfg, log)
		},
	}
}

func newFixtureCmd(load loader) *cobra.Command {
	var (
		dir, host, port string
		useTLS          bool
	)

	cmd := &cobra.Command{
		Use:   "fixture",
		Short: "Serve a static Redfish resource tree for testing discovery.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := load()
			if err != nil {
				return err
			}

			params := app.FixtureParamsFromConfig(cfg)
			params.Dir = dir

			flags := cmd.Flags()
			if flags.Changed("host") {
				params.Host = host
			}

			if flags.Changed("port") {
				params.Port = port
			}

			if flags.Changed("tls") {
				params.TLS = useTLS
			}

			return serveFixtureFunc(cmd.Context(), cfg, log, params)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&dir, "dir", "d", "", "directory of resource JSON files (default: built-in sample)")
	flags.StringVar(&host, "host", "", "listen host (default: target host)")
	flags.StringVar(&port, "port", "", "listen port (default: target port)")
	flags.BoolVar(&useTLS, "tls", false, "serve HTTPS with a self-signed certificate (default: target scheme is https)")

	return cmd
}
