package store

import (
	"context"
	"sync"
	"time"

	"github.com/ctmis/ctgov-sync/internal/models"
)

// memoryStore is an in-memory trial store used in tests and dry runs. It
// applies the same merge policy as the Postgres store.
type memoryStore struct {
	mu               sync.RWMutex
	trials           map[string]models.TrialRecord
	analyticsRefresh int
}

// NewMemoryStore creates an empty in-memory trial store.
func NewMemoryStore() TrialStore {
	return &memoryStore{trials: make(map[string]models.TrialRecord)}
}

func (s *memoryStore) Upsert(_ context.Context, record *models.TrialRecord) (UpsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.trials[record.NCTID]
	if !ok {
		s.trials[record.NCTID] = *record
		return ResultInserted, nil
	}

	if sameDay(existing.LastUpdateDate, record.LastUpdateDate) {
		return ResultUnchanged, nil
	}

	// Replace mutable fields only; identification fields stay as first seen.
	existing.Status = record.Status
	existing.Enrollment = record.Enrollment
	existing.CompletionDate = record.CompletionDate
	existing.LastUpdateDate = record.LastUpdateDate
	existing.Conditions = record.Conditions
	existing.OutcomeMeasures = record.OutcomeMeasures
	existing.EligibilityCriteria = record.EligibilityCriteria
	existing.BiospecRetention = record.BiospecRetention
	existing.BiospecDescription = record.BiospecDescription
	existing.DesignInfo = record.DesignInfo
	s.trials[record.NCTID] = existing

	return ResultUpdated, nil
}

func (s *memoryStore) Get(_ context.Context, nctID string) (*models.TrialRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.trials[nctID]
	if !ok {
		return nil, false, nil
	}
	copied := record
	return &copied, true, nil
}

func (s *memoryStore) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.trials)), nil
}

func (s *memoryStore) Watermark(_ context.Context) (time.Time, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var max time.Time
	for _, record := range s.trials {
		if record.LastUpdateDate.After(max) {
			max = record.LastUpdateDate
		}
	}
	if max.IsZero() {
		return time.Time{}, false, nil
	}
	return max, true, nil
}

func (s *memoryStore) RefreshAnalytics(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analyticsRefresh++
	return nil
}
