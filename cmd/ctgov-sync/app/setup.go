package app

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"

	"github.com/ctmis/ctgov-sync/internal/config"
	"github.com/ctmis/ctgov-sync/internal/db"
	"github.com/ctmis/ctgov-sync/internal/logger"
	"github.com/ctmis/ctgov-sync/internal/registry"
	"github.com/ctmis/ctgov-sync/internal/store"
	pkgsync "github.com/ctmis/ctgov-sync/internal/sync"
	"github.com/ctmis/ctgov-sync/internal/sync/state"
	"github.com/ctmis/ctgov-sync/internal/telemetry"
)

// loadConfigFromFlag loads the configuration file named by the --config flag.
func loadConfigFromFlag(cmd *cobra.Command) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	cfg, err := config.LoadConfig(config.WithConfigPath(configPath))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// buildSyncManager wires a sync manager from configuration. With dryRun set,
// records land in an in-memory store and no database connection is opened;
// the returned cleanup function is then a no-op.
func buildSyncManager(ctx context.Context, cfg *config.Config, dryRun bool) (pkgsync.Manager, func(), error) {
	client := registry.NewClient(&cfg.Registry)

	metrics, err := telemetry.NewSyncMetrics(otel.GetMeterProvider())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create sync metrics: %w", err)
	}

	if dryRun {
		logger.Info("Dry run: trials will not be persisted")
		manager := pkgsync.NewDefaultSyncManager(
			client, store.NewMemoryStore(), nil, cfg.Sync.GetLookback(), metrics)
		return manager, func() {}, nil
	}

	conn, err := db.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	manager := pkgsync.NewDefaultSyncManager(
		client,
		store.NewPostgresStore(conn.Queries),
		state.NewDBStateService(conn.Pool),
		cfg.Sync.GetLookback(),
		metrics,
	)
	return manager, conn.Close, nil
}
