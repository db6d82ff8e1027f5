package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the storefront HTTP server",
		Long:  "Serves every storefront view until SIGINT or SIGTERM, then shuts down gracefully.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			srv, err := NewServer(cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			if err := srv.Start(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			<-ctx.Done()

			return srv.Shutdown(cfg.ShutdownTimeoutDuration())
		},
	}
}
