package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var runForce bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one proper search and exit",
	Long: `Runs a single proper search pass. The normal once-a-day gate still
applies; pass --force to search regardless of when the last run was.`,
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

		if runForce {
			return a.finder.RunNow(ctx)
		}
		return a.finder.Run(ctx)
	},
}

func init() {
	runCmd.Flags().BoolVar(&runForce, "force", false, "Ignore the once-a-day gate")
	rootCmd.AddCommand(runCmd)
}
