package cmd

import (
	"context"
	"fmt"

	"seerr-cleaner/core/config"
	"seerr-cleaner/core/httpclient"
	"seerr-cleaner/core/logger"
	"seerr-cleaner/core/reconcile"
	"seerr-cleaner/feature/arr"
	"seerr-cleaner/feature/seerr"

	"github.com/google/uuid"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the run command
	envFile string
	dryRun  bool
)

// runCmd performs one cleaning pass over every configured request service.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Delete request-service media that Sonarr/Radarr no longer hold",
	Long: `Scan Overseerr and Jellyseerr (whichever are configured) page by page and delete
every media entry that has no Sonarr/Radarr id, or whose id Sonarr/Radarr no longer knows.

Configuration is read from the environment, optionally seeded from an .env file:
  OVERSEERR_URL, OVERSEERR_KEY     request service (optional)
  JELLYSEERR_URL, JELLYSEERR_KEY   request service (optional)
  SONARR_URL, SONARR_KEY           series library (required)
  RADARR_URL, RADARR_KEY           movie library (required)

Examples:
  # Clean using ./.env
  seerr-cleaner run

  # Show what would be deleted without deleting anything
  seerr-cleaner run --dry-run

  # Use another env file
  seerr-cleaner run --env-file ~/.config/seerr-cleaner.env`,
	RunE: runClean,
}

func init() {
	runCmd.Flags().StringVar(&envFile, "env-file", ".env", "Path of the .env file to load (ignored if missing)")
	runCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Log deletions instead of performing them")

	RootCmd.AddCommand(runCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	path, err := homedir.Expand(envFile)
	if err != nil {
		return fmt.Errorf("failed to resolve env file: %w", err)
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = l.Sync() }()
	l = logger.WithRunID(l, uuid.NewString())

	hc := httpclient.New(cfg.HTTP, l)
	library := arr.NewLibrary(
		arr.NewSonarr(cfg.Sonarr, hc),
		arr.NewRadarr(cfg.Radarr, hc),
	)

	var catalogs []reconcile.Catalog
	for _, target := range cfg.Targets() {
		if !target.Enabled() {
			l.Info("Skipping request service: not configured", zap.String("target", target.Name))
			continue
		}
		catalogs = append(catalogs, seerr.NewClient(target.Name, target.Endpoint, hc))
	}
	if len(catalogs) == 0 {
		l.Warn("No request service configured, nothing to do")
	}

	engine := reconcile.NewEngine(library, reconcile.Options{
		Config: cfg.Reconcile,
		DryRun: dryRun,
	}, l)

	if err := engine.Run(ctx, catalogs); err != nil {
		return fmt.Errorf("cleaning failed: %w", err)
	}
	return nil
}
