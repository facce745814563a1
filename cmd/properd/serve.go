package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vmunix/properd/internal/scheduler"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the proper search daemon",
	Long: `Starts the daemon. The proper search is scheduled hourly and the
configured target hour decides which ticks actually search.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if !a.cfg.Proper.IsEnabled() {
			a.log.Warn("proper search disabled in config, nothing to do")
			return nil
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		a.log.Info("properd starting", "version", version)
		return scheduler.New(a.finder, a.log).Start(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
