// Package state records sync run history.
package state

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RunStatus is the lifecycle status of a sync run.
type RunStatus string

const (
	// RunStatusRunning marks a run that has started but not finished.
	RunStatusRunning RunStatus = "running"

	// RunStatusCompleted marks a run that finished successfully.
	RunStatusCompleted RunStatus = "completed"

	// RunStatusFailed marks a run that aborted with a terminal error.
	RunStatusFailed RunStatus = "failed"
)

// Run is one recorded sync run.
type Run struct {
	ID         uuid.UUID
	StartedAt  time.Time
	FinishedAt *time.Time
	Status     RunStatus
	Summary    RunSummary
	Error      string
}

// RunSummary carries the counters of a finished run.
type RunSummary struct {
	Watermark time.Time
	Pages     int
	Inserted  int
	Updated   int
	Unchanged int
	Dropped   int
}

// Service persists sync run history.
//
//go:generate mockgen -destination=mocks/mock_service.go -package=mocks -source=service.go Service
type Service interface {
	// StartRun records the beginning of a run and returns its ID.
	StartRun(ctx context.Context) (uuid.UUID, error)

	// CompleteRun marks a run as completed with its final counters.
	CompleteRun(ctx context.Context, id uuid.UUID, summary RunSummary) error

	// FailRun marks a run as failed with a terminal error message. The
	// summary carries the counts accumulated before the failure.
	FailRun(ctx context.Context, id uuid.UUID, summary RunSummary, message string) error

	// LatestRun returns the most recently started run, or nil if none exist.
	LatestRun(ctx context.Context) (*Run, error)

	// ListRuns returns up to limit runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]Run, error)
}
