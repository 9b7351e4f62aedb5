// Package store persists normalized trial records.
package store

import (
	"context"
	"time"

	"github.com/ctmis/ctgov-sync/internal/models"
)

// UpsertResult classifies the effect of an upsert.
type UpsertResult int

const (
	// ResultInserted means the record did not exist before.
	ResultInserted UpsertResult = iota

	// ResultUpdated means an existing record's mutable fields were replaced.
	ResultUpdated

	// ResultUnchanged means the stored record already carried the incoming
	// last update date and was left untouched.
	ResultUnchanged
)

// String returns a human-readable result name.
func (r UpsertResult) String() string {
	switch r {
	case ResultInserted:
		return "inserted"
	case ResultUpdated:
		return "updated"
	case ResultUnchanged:
		return "unchanged"
	default:
		return "unknown"
	}
}

// TrialStore is the persistence interface for trial records.
//
//go:generate mockgen -destination=mocks/mock_store.go -package=mocks -source=store.go TrialStore
type TrialStore interface {
	// Upsert inserts the record or replaces the mutable fields of an
	// existing record with the same NCT ID. Identification fields of an
	// existing record are preserved. A record whose last update date
	// matches the stored one is left untouched.
	Upsert(ctx context.Context, record *models.TrialRecord) (UpsertResult, error)

	// Get returns the stored record, or false if none exists.
	Get(ctx context.Context, nctID string) (*models.TrialRecord, bool, error)

	// Count returns the number of stored trials.
	Count(ctx context.Context) (int64, error)

	// Watermark returns the maximum last update date across all stored
	// trials, or false if the store is empty.
	Watermark(ctx context.Context) (time.Time, bool, error)

	// RefreshAnalytics recomputes derived summaries from the stored trials.
	RefreshAnalytics(ctx context.Context) error
}
