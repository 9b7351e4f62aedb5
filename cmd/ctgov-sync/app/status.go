package app

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ctmis/ctgov-sync/internal/db"
	"github.com/ctmis/ctgov-sync/internal/sync/state"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show recent sync runs",
	Long:  `Show recent sync runs with their status, counters and watermark, newest first.`,
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().String("config", "", "Path to configuration file (YAML format, required)")
	statusCmd.Flags().Int("limit", 10, "Number of runs to show")

	if err := statusCmd.MarkFlagRequired("config"); err != nil {
		panic(err)
	}
}

func runStatus(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadConfigFromFlag(cmd)
	if err != nil {
		return err
	}

	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return fmt.Errorf("failed to get limit flag: %w", err)
	}

	conn, err := db.NewConnection(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer conn.Close()

	runs, err := state.NewDBStateService(conn.Pool).ListRuns(ctx, limit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No sync runs recorded yet")
		return nil
	}

	for _, run := range runs {
		fmt.Println(formatRun(run))
	}
	return nil
}

func formatRun(run state.Run) string {
	line := fmt.Sprintf("%s  %-9s  started %s",
		run.ID, run.Status, run.StartedAt.Format(time.RFC3339))

	switch run.Status {
	case state.RunStatusCompleted:
		line += fmt.Sprintf("  watermark=%s pages=%d inserted=%d updated=%d unchanged=%d dropped=%d",
			run.Summary.Watermark.Format("2006-01-02"), run.Summary.Pages,
			run.Summary.Inserted, run.Summary.Updated, run.Summary.Unchanged, run.Summary.Dropped)
	case state.RunStatusFailed:
		line += fmt.Sprintf("  error=%q", run.Error)
	case state.RunStatusRunning:
		// Still in flight, nothing more to show.
	}
	return line
}
