package app

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ctmis/ctgov-sync/internal/logger"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one sync pass and exit",
	Long: `Run one incremental sync pass against clinicaltrials.gov and exit.

The pass fetches every study updated on or after the stored watermark,
upserts the records, and recomputes derived analytics. On an empty database
the watermark falls back to the configured lookback window.`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().String("config", "", "Path to configuration file (YAML format, required)")
	syncCmd.Flags().Bool("dry-run", false, "Fetch and normalize without writing to the database")

	if err := syncCmd.MarkFlagRequired("config"); err != nil {
		panic(err)
	}
}

func runSync(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadConfigFromFlag(cmd)
	if err != nil {
		return err
	}

	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return fmt.Errorf("failed to get dry-run flag: %w", err)
	}

	manager, cleanup, err := buildSyncManager(ctx, cfg, dryRun)
	if err != nil {
		return err
	}
	defer cleanup()

	result, syncErr := manager.PerformSync(ctx)
	if syncErr != nil {
		return fmt.Errorf("sync failed in stage %s: %w", syncErr.Stage, syncErr)
	}

	logger.Infof("Sync complete: %d inserted, %d updated, %d unchanged, %d dropped across %d page(s)",
		result.Inserted, result.Updated, result.Unchanged, result.Dropped, result.Pages)
	return nil
}
