package state

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ctmis/ctgov-sync/internal/db/sqlc"
)

type dbStateService struct {
	pool *pgxpool.Pool
}

// NewDBStateService creates a database-backed sync run state service
func NewDBStateService(pool *pgxpool.Pool) Service {
	return &dbStateService{
		pool: pool,
	}
}

func (d *dbStateService) StartRun(ctx context.Context) (uuid.UUID, error) {
	queries := sqlc.New(d.pool)

	id := uuid.New()
	_, err := queries.InsertSyncRun(ctx, pgtype.UUID{Bytes: id, Valid: true})
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to record sync run start: %w", err)
	}
	return id, nil
}

func (d *dbStateService) CompleteRun(ctx context.Context, id uuid.UUID, summary RunSummary) error {
	queries := sqlc.New(d.pool)

	err := queries.CompleteSyncRun(ctx, sqlc.CompleteSyncRunParams{
		ID:               pgtype.UUID{Bytes: id, Valid: true},
		Watermark:        pgtype.Date{Time: summary.Watermark, Valid: !summary.Watermark.IsZero()},
		PagesFetched:     int32(summary.Pages),
		RecordsInserted:  int32(summary.Inserted),
		RecordsUpdated:   int32(summary.Updated),
		RecordsUnchanged: int32(summary.Unchanged),
		RecordsDropped:   int32(summary.Dropped),
	})
	if err != nil {
		return fmt.Errorf("failed to record sync run completion: %w", err)
	}
	return nil
}

func (d *dbStateService) FailRun(ctx context.Context, id uuid.UUID, summary RunSummary, message string) error {
	queries := sqlc.New(d.pool)

	err := queries.FailSyncRun(ctx, sqlc.FailSyncRunParams{
		ID:               pgtype.UUID{Bytes: id, Valid: true},
		Watermark:        pgtype.Date{Time: summary.Watermark, Valid: !summary.Watermark.IsZero()},
		PagesFetched:     int32(summary.Pages),
		RecordsInserted:  int32(summary.Inserted),
		RecordsUpdated:   int32(summary.Updated),
		RecordsUnchanged: int32(summary.Unchanged),
		RecordsDropped:   int32(summary.Dropped),
		ErrorMessage:     pgtype.Text{String: message, Valid: message != ""},
	})
	if err != nil {
		return fmt.Errorf("failed to record sync run failure: %w", err)
	}
	return nil
}

func (d *dbStateService) LatestRun(ctx context.Context) (*Run, error) {
	queries := sqlc.New(d.pool)

	row, err := queries.GetLatestSyncRun(ctx)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest sync run: %w", err)
	}

	run := dbRunToRun(row)
	return &run, nil
}

func (d *dbStateService) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	queries := sqlc.New(d.pool)

	rows, err := queries.ListSyncRuns(ctx, int32(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list sync runs: %w", err)
	}

	runs := make([]Run, 0, len(rows))
	for _, row := range rows {
		runs = append(runs, dbRunToRun(row))
	}
	return runs, nil
}

func dbRunToRun(row sqlc.SyncRun) Run {
	run := Run{
		ID:        row.ID.Bytes,
		StartedAt: row.StartedAt.Time,
		Status:    RunStatus(row.Status),
		Summary: RunSummary{
			Pages:     int(row.PagesFetched),
			Inserted:  int(row.RecordsInserted),
			Updated:   int(row.RecordsUpdated),
			Unchanged: int(row.RecordsUnchanged),
			Dropped:   int(row.RecordsDropped),
		},
	}

	if row.FinishedAt.Valid {
		finishedAt := row.FinishedAt.Time
		run.FinishedAt = &finishedAt
	}
	if row.Watermark.Valid {
		run.Summary.Watermark = row.Watermark.Time
	}
	if row.ErrorMessage.Valid {
		run.Error = row.ErrorMessage.String
	}

	return run
}
