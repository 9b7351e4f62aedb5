package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/ctmis/ctgov-sync/internal/db/sqlc"
	"github.com/ctmis/ctgov-sync/internal/models"
)

// postgresStore persists trial records through the generated query layer.
type postgresStore struct {
	queries *sqlc.Queries
}

// NewPostgresStore creates a trial store backed by Postgres.
func NewPostgresStore(queries *sqlc.Queries) TrialStore {
	return &postgresStore{queries: queries}
}

func (s *postgresStore) Upsert(ctx context.Context, record *models.TrialRecord) (UpsertResult, error) {
	stored, err := s.queries.GetTrialLastUpdateDate(ctx, record.NCTID)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		// New record, fall through to the insert path.
	case err != nil:
		return 0, fmt.Errorf("failed to look up trial %s: %w", record.NCTID, err)
	case stored.Valid && sameDay(stored.Time, record.LastUpdateDate):
		return ResultUnchanged, nil
	}

	params, err := upsertParams(record)
	if err != nil {
		return 0, err
	}

	inserted, err := s.queries.UpsertTrial(ctx, params)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert trial %s: %w", record.NCTID, err)
	}
	if inserted {
		return ResultInserted, nil
	}
	return ResultUpdated, nil
}

func (s *postgresStore) Get(ctx context.Context, nctID string) (*models.TrialRecord, bool, error) {
	trial, err := s.queries.GetTrial(ctx, nctID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get trial %s: %w", nctID, err)
	}

	record, err := recordFromRow(trial)
	if err != nil {
		return nil, false, err
	}
	return record, true, nil
}

func (s *postgresStore) Count(ctx context.Context) (int64, error) {
	count, err := s.queries.CountTrials(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count trials: %w", err)
	}
	return count, nil
}

func (s *postgresStore) Watermark(ctx context.Context) (time.Time, bool, error) {
	maxDate, err := s.queries.GetMaxLastUpdateDate(ctx)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to read watermark: %w", err)
	}
	if !maxDate.Valid {
		return time.Time{}, false, nil
	}
	return maxDate.Time, true, nil
}

func (s *postgresStore) RefreshAnalytics(ctx context.Context) error {
	if err := s.queries.RefreshTrialAnalytics(ctx); err != nil {
		return fmt.Errorf("failed to refresh trial analytics: %w", err)
	}
	return nil
}

// sameDay compares at DATE granularity, matching the column type.
func sameDay(a, b time.Time) bool {
	return a.Format("2006-01-02") == b.Format("2006-01-02")
}

func upsertParams(record *models.TrialRecord) (sqlc.UpsertTrialParams, error) {
	conditions, err := json.Marshal(record.Conditions)
	if err != nil {
		return sqlc.UpsertTrialParams{}, fmt.Errorf("failed to marshal conditions for %s: %w", record.NCTID, err)
	}
	outcomes, err := json.Marshal(record.OutcomeMeasures)
	if err != nil {
		return sqlc.UpsertTrialParams{}, fmt.Errorf("failed to marshal outcome measures for %s: %w", record.NCTID, err)
	}
	eligibility, err := json.Marshal(record.EligibilityCriteria)
	if err != nil {
		return sqlc.UpsertTrialParams{}, fmt.Errorf("failed to marshal eligibility criteria for %s: %w", record.NCTID, err)
	}
	designInfo, err := json.Marshal(record.DesignInfo)
	if err != nil {
		return sqlc.UpsertTrialParams{}, fmt.Errorf("failed to marshal design info for %s: %w", record.NCTID, err)
	}

	return sqlc.UpsertTrialParams{
		NctID:               record.NCTID,
		BriefTitle:          textFromPtr(record.BriefTitle),
		OfficialTitle:       textFromPtr(record.OfficialTitle),
		SponsorName:         textFromPtr(record.SponsorName),
		Status:              textFromPtr(record.Status),
		Phase:               textFromPtr(record.Phase),
		StudyType:           textFromPtr(record.StudyType),
		Enrollment:          int4FromPtr(record.Enrollment),
		StartDate:           dateFromPtr(record.StartDate),
		CompletionDate:      dateFromPtr(record.CompletionDate),
		LastUpdateDate:      pgtype.Date{Time: record.LastUpdateDate, Valid: true},
		Conditions:          conditions,
		OutcomeMeasures:     outcomes,
		EligibilityCriteria: eligibility,
		BiospecRetention:    textFromPtr(record.BiospecRetention),
		BiospecDescription:  textFromPtr(record.BiospecDescription),
		DesignInfo:          designInfo,
	}, nil
}

func recordFromRow(trial sqlc.ClinicalTrial) (*models.TrialRecord, error) {
	record := &models.TrialRecord{
		NCTID:              trial.NctID,
		BriefTitle:         ptrFromText(trial.BriefTitle),
		OfficialTitle:      ptrFromText(trial.OfficialTitle),
		SponsorName:        ptrFromText(trial.SponsorName),
		Status:             ptrFromText(trial.Status),
		Phase:              ptrFromText(trial.Phase),
		StudyType:          ptrFromText(trial.StudyType),
		Enrollment:         ptrFromInt4(trial.Enrollment),
		StartDate:          ptrFromDate(trial.StartDate),
		CompletionDate:     ptrFromDate(trial.CompletionDate),
		LastUpdateDate:     trial.LastUpdateDate.Time,
		BiospecRetention:   ptrFromText(trial.BiospecRetention),
		BiospecDescription: ptrFromText(trial.BiospecDescription),
	}

	if len(trial.Conditions) > 0 {
		if err := json.Unmarshal(trial.Conditions, &record.Conditions); err != nil {
			return nil, fmt.Errorf("failed to unmarshal conditions for %s: %w", trial.NctID, err)
		}
	}
	if len(trial.OutcomeMeasures) > 0 {
		if err := json.Unmarshal(trial.OutcomeMeasures, &record.OutcomeMeasures); err != nil {
			return nil, fmt.Errorf("failed to unmarshal outcome measures for %s: %w", trial.NctID, err)
		}
	}
	if len(trial.EligibilityCriteria) > 0 {
		if err := json.Unmarshal(trial.EligibilityCriteria, &record.EligibilityCriteria); err != nil {
			return nil, fmt.Errorf("failed to unmarshal eligibility criteria for %s: %w", trial.NctID, err)
		}
	}
	if len(trial.DesignInfo) > 0 {
		if err := json.Unmarshal(trial.DesignInfo, &record.DesignInfo); err != nil {
			return nil, fmt.Errorf("failed to unmarshal design info for %s: %w", trial.NctID, err)
		}
	}

	return record, nil
}

func textFromPtr(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func ptrFromText(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

func int4FromPtr(n *int32) pgtype.Int4 {
	if n == nil {
		return pgtype.Int4{}
	}
	return pgtype.Int4{Int32: *n, Valid: true}
}

func ptrFromInt4(n pgtype.Int4) *int32 {
	if !n.Valid {
		return nil
	}
	v := n.Int32
	return &v
}

func dateFromPtr(t *time.Time) pgtype.Date {
	if t == nil {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: *t, Valid: true}
}

func ptrFromDate(d pgtype.Date) *time.Time {
	if !d.Valid {
		return nil
	}
	t := d.Time
	return &t
}
