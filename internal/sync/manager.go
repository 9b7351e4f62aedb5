// Package sync implements the incremental trial synchronization run.
//
// A run resolves the watermark from the store, walks the registry pages from
// that watermark, normalizes and upserts every study, and finally triggers a
// recompute of derived analytics. Individual bad records are dropped and
// logged; only setup, fetch and recompute failures abort a run.
package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ctmis/ctgov-sync/internal/logger"
	"github.com/ctmis/ctgov-sync/internal/normalize"
	"github.com/ctmis/ctgov-sync/internal/registry"
	"github.com/ctmis/ctgov-sync/internal/store"
	"github.com/ctmis/ctgov-sync/internal/sync/state"
	"github.com/ctmis/ctgov-sync/internal/telemetry"
)

// Stage names for structured sync errors
const (
	// StageWatermark covers failures resolving the sync watermark
	StageWatermark = "watermark"

	// StageFetch covers registry transport, status and decode failures
	StageFetch = "fetch"

	// StageRecompute covers failures recomputing derived analytics
	StageRecompute = "recompute"
)

// Error represents a structured terminal error of a sync run
type Error struct {
	Err     error
	Message string
	Stage   string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Result contains the counters of a successful sync run
type Result struct {
	// Watermark is the lower bound the run fetched from.
	Watermark time.Time

	Pages     int
	Inserted  int
	Updated   int
	Unchanged int
	Dropped   int
}

// Manager manages synchronization runs against the trial registry
//
//go:generate mockgen -destination=mocks/mock_manager.go -package=mocks -source=manager.go Manager
type Manager interface {
	// PerformSync executes one complete sync run. On failure the returned
	// result carries the counts accumulated before the error, or nil if the
	// run failed before the first fetch.
	PerformSync(ctx context.Context) (*Result, *Error)
}

// defaultSyncManager is the default implementation of Manager
type defaultSyncManager struct {
	client   registry.Client
	trials   store.TrialStore
	runs     state.Service
	metrics  *telemetry.SyncMetrics
	lookback time.Duration
	timeNow  func() time.Time
}

// NewDefaultSyncManager creates a new defaultSyncManager. The runs service
// and metrics may be nil; run bookkeeping and instrumentation are then
// skipped.
func NewDefaultSyncManager(
	client registry.Client,
	trials store.TrialStore,
	runs state.Service,
	lookback time.Duration,
	metrics *telemetry.SyncMetrics,
) Manager {
	return &defaultSyncManager{
		client:   client,
		trials:   trials,
		runs:     runs,
		metrics:  metrics,
		lookback: lookback,
		timeNow:  time.Now,
	}
}

// PerformSync executes one complete sync run
func (s *defaultSyncManager) PerformSync(ctx context.Context) (*Result, *Error) {
	start := s.timeNow()
	runID := s.startRun(ctx)

	result, syncErr := s.performSync(ctx)

	duration := s.timeNow().Sub(start)
	s.metrics.RecordSyncDuration(ctx, duration, syncErr == nil)

	if syncErr != nil {
		logger.Errorf("Sync run failed in stage %s: %v", syncErr.Stage, syncErr.Err)
		s.failRun(ctx, runID, result, syncErr)
		return result, syncErr
	}

	s.completeRun(ctx, runID, result)
	s.recordMetrics(ctx, result)

	logger.Infof("Sync run finished: pages=%d inserted=%d updated=%d unchanged=%d dropped=%d watermark=%s duration=%s",
		result.Pages, result.Inserted, result.Updated, result.Unchanged, result.Dropped,
		result.Watermark.Format("2006-01-02"), duration)

	return result, nil
}

func (s *defaultSyncManager) performSync(ctx context.Context) (*Result, *Error) {
	watermark, syncErr := s.resolveWatermark(ctx)
	if syncErr != nil {
		return nil, syncErr
	}

	result := &Result{Watermark: watermark}

	pageToken := ""
	for {
		page, err := s.client.FetchPage(ctx, watermark, pageToken)
		if err != nil {
			// Keep the partial counts; records already upserted stay upserted
			// and the failed run row records what landed.
			return result, &Error{
				Err:     err,
				Message: fmt.Sprintf("Fetch failed: %v", err),
				Stage:   StageFetch,
			}
		}

		result.Pages++
		s.persistPage(ctx, page, result)

		// An empty token is the definitive end of the result set.
		if page.NextPageToken == "" {
			break
		}
		pageToken = page.NextPageToken
	}

	// A run that saw no records leaves the derived summaries alone.
	processed := result.Inserted + result.Updated + result.Unchanged + result.Dropped
	if processed > 0 {
		if err := s.trials.RefreshAnalytics(ctx); err != nil {
			return result, &Error{
				Err:     err,
				Message: fmt.Sprintf("Analytics recompute failed: %v", err),
				Stage:   StageRecompute,
			}
		}
	}

	return result, nil
}

// resolveWatermark returns the maximum stored last update date, falling back
// to the configured lookback window when the store is empty.
func (s *defaultSyncManager) resolveWatermark(ctx context.Context) (time.Time, *Error) {
	watermark, ok, err := s.trials.Watermark(ctx)
	if err != nil {
		return time.Time{}, &Error{
			Err:     err,
			Message: fmt.Sprintf("Failed to resolve watermark: %v", err),
			Stage:   StageWatermark,
		}
	}
	if !ok {
		watermark = s.timeNow().Add(-s.lookback)
		logger.Infof("Store is empty, syncing from %s", watermark.Format("2006-01-02"))
	}
	return watermark, nil
}

// persistPage normalizes and upserts every study on the page. Records that
// cannot be normalized or persisted are dropped; the page always completes.
func (s *defaultSyncManager) persistPage(ctx context.Context, page *registry.Page, result *Result) {
	for _, study := range page.Studies {
		record, err := normalize.Record(study)
		if err != nil {
			result.Dropped++
			logger.Warnf("%v", err)
			continue
		}

		outcome, err := s.trials.Upsert(ctx, record)
		if err != nil {
			result.Dropped++
			logger.Errorf("Failed to persist trial %s: %v", record.NCTID, err)
			continue
		}

		switch outcome {
		case store.ResultInserted:
			result.Inserted++
		case store.ResultUpdated:
			result.Updated++
		case store.ResultUnchanged:
			result.Unchanged++
		}
	}
}

// startRun records the run start. Bookkeeping failures never block a sync.
func (s *defaultSyncManager) startRun(ctx context.Context) uuid.UUID {
	if s.runs == nil {
		return uuid.Nil
	}
	id, err := s.runs.StartRun(ctx)
	if err != nil {
		logger.Warnf("Failed to record sync run start: %v", err)
		return uuid.Nil
	}
	return id
}

func (s *defaultSyncManager) completeRun(ctx context.Context, id uuid.UUID, result *Result) {
	if s.runs == nil || id == uuid.Nil {
		return
	}
	err := s.runs.CompleteRun(ctx, id, state.RunSummary{
		Watermark: result.Watermark,
		Pages:     result.Pages,
		Inserted:  result.Inserted,
		Updated:   result.Updated,
		Unchanged: result.Unchanged,
		Dropped:   result.Dropped,
	})
	if err != nil {
		logger.Warnf("Failed to record sync run completion: %v", err)
	}
}

func (s *defaultSyncManager) failRun(ctx context.Context, id uuid.UUID, result *Result, syncErr *Error) {
	if s.runs == nil || id == uuid.Nil {
		return
	}

	var summary state.RunSummary
	if result != nil {
		summary = state.RunSummary{
			Watermark: result.Watermark,
			Pages:     result.Pages,
			Inserted:  result.Inserted,
			Updated:   result.Updated,
			Unchanged: result.Unchanged,
			Dropped:   result.Dropped,
		}
	}

	if err := s.runs.FailRun(ctx, id, summary, syncErr.Message); err != nil {
		logger.Warnf("Failed to record sync run failure: %v", err)
	}
}

func (s *defaultSyncManager) recordMetrics(ctx context.Context, result *Result) {
	s.metrics.RecordPagesFetched(ctx, int64(result.Pages))
	s.metrics.RecordRecords(ctx, "inserted", int64(result.Inserted))
	s.metrics.RecordRecords(ctx, "updated", int64(result.Updated))
	s.metrics.RecordRecords(ctx, "unchanged", int64(result.Unchanged))
	s.metrics.RecordRecords(ctx, "dropped", int64(result.Dropped))

	if count, err := s.trials.Count(ctx); err == nil {
		s.metrics.RecordTrialsTotal(ctx, count)
	}
}
