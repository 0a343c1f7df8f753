package main

import (
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tonghaoch/landing-server/internal/config"
	"github.com/tonghaoch/landing-server/internal/server"
)

var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:          "landing-server",
		Short:        "Serve the demo landing page and health check",
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg)
		},
	}
	bindFlags(cmd, &cfg)

	cmd.AddCommand(startCmd())
	return cmd
}

func startCmd() *cobra.Command {
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:          "start",
		Short:        "Start the HTTP server (same as running with no command)",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg)
		},
	}
	bindFlags(cmd, &cfg)
	return cmd
}

func bindFlags(cmd *cobra.Command, cfg *config.Config) {
	cmd.Flags().StringVar(&cfg.Host, "host", cfg.Host, "address to bind")
	cmd.Flags().IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	cmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "enable verbose logging")
}

func run(stdout, stderr io.Writer, cfg config.Config) error {
	// Configure logging
	logLevel := slog.LevelInfo
	if cfg.Verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	slog.Debug("landing-server", "version", version)

	srv := server.New(cfg)
	return srv.ListenAndServe(func(addr net.Addr) {
		exitOnSignal()
		fmt.Fprintf(stdout, "Server running on %s\n", server.URL(addr))
	})
}

// exitOnSignal exits the process on SIGINT or SIGTERM. It is installed only
// once the listener is bound.
var exitOnSignal = func() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		slog.Info("shutting down...")
		os.Exit(0)
	}()
}
