package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "properd",
	Short: "Proper/repack replacement daemon",
	Long: `properd - proper/repack replacement daemon

Watches usenet indexers for PROPER and REPACK re-releases of episodes
already in the library and replaces them at the same quality.

Run 'properd serve' to start the daemon, or 'properd run' for a
one-shot search.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: auto-discover)")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("properd {{.Version}}\n")
}
