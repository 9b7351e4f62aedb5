package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ctmis/ctgov-sync/internal/logger"
	"github.com/ctmis/ctgov-sync/internal/sync/coordinator"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the sync pipeline as a daemon",
	Long: `Run the sync pipeline as a long-lived daemon.

An initial sync pass runs immediately; further passes run on the configured
interval (sync.interval, default 24h) with a small jitter. The daemon stops
on SIGINT or SIGTERM.`,
	RunE: runDaemon,
}

func init() {
	runCmd.Flags().String("config", "", "Path to configuration file (YAML format, required)")

	if err := runCmd.MarkFlagRequired("config"); err != nil {
		panic(err)
	}
}

func runDaemon(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadConfigFromFlag(cmd)
	if err != nil {
		return err
	}

	manager, cleanup, err := buildSyncManager(ctx, cfg, false)
	if err != nil {
		return err
	}
	defer cleanup()

	syncCoordinator := coordinator.New(manager, cfg.Sync.GetInterval())

	errCh := make(chan error, 1)
	go func() {
		errCh <- syncCoordinator.Start(ctx)
	}()

	// Wait for interrupt signal to gracefully shut down
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		logger.Info("Shutting down...")
		if err := syncCoordinator.Stop(); err != nil {
			logger.Errorf("Failed to stop sync coordinator: %v", err)
		}
		return <-errCh
	case err := <-errCh:
		return err
	}
}
