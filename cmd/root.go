package cmd

import (
	"fmt"
	"os"

	"seerr-cleaner/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "seerr-cleaner",
	Short: "Removes stale media from Overseerr and Jellyseerr",
	Long: `seerr-cleaner walks the media catalog of Overseerr and Jellyseerr and deletes
every entry whose series or movie is no longer held by Sonarr or Radarr.
It is meant to be run periodically, e.g. from cron.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits with status 1 on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console encoding at debug level gives readable ISO8601 timestamps
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
