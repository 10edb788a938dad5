// Package cmd implements the CLI commands for the dealflow server.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "dealflow",
	Short: "Deal pipeline timers and buyer matching for a business-sale marketplace",
	Long: "An API-first service that tracks buyer/seller deals through a staged pipeline " +
		"with reservation timers, releases listings when deadlines lapse, and scores " +
		"listings against buyer acquisition criteria to send match alerts.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
