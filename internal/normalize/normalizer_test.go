package normalize_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctmis/ctgov-sync/internal/models"
	"github.com/ctmis/ctgov-sync/internal/normalize"
	"github.com/ctmis/ctgov-sync/internal/registry"
)

func ptr[T any](v T) *T {
	return &v
}

func fullStudy() registry.Study {
	return registry.Study{
		ProtocolSection: &registry.ProtocolSection{
			StudyType: ptr("INTERVENTIONAL"),
			IdentificationModule: &registry.IdentificationModule{
				NCTID:         ptr("NCT01234567"),
				BriefTitle:    ptr("A Study of Something"),
				OfficialTitle: ptr("A Phase 2 Study of Something in Adults"),
			},
			DesignModule: &registry.DesignModule{
				Phases: []string{"PHASE2", "PHASE3"},
				DesignInfo: &registry.DesignInfo{
					Allocation:        ptr("RANDOMIZED"),
					InterventionModel: ptr("PARALLEL"),
					PrimaryPurpose:    ptr("TREATMENT"),
					Masking:           ptr("DOUBLE"),
					MaskingInfo:       &registry.MaskingInfo{WhoMasked: []string{"PARTICIPANT", "INVESTIGATOR"}},
				},
			},
			StatusModule: &registry.StatusModule{
				OverallStatus:      ptr("RECRUITING"),
				EnrollmentCount:    ptr(int32(120)),
				StartDate:          ptr("2023-06-01"),
				CompletionDate:     ptr("2025-12"),
				LastUpdatePostDate: ptr("2024-01-20"),
			},
			SponsorCollaboratorsModule: &registry.SponsorCollaboratorsModule{
				LeadSponsor: &registry.LeadSponsor{Name: ptr("Acme Pharma")},
			},
			ConditionsModule: &registry.ConditionsModule{
				Conditions: []string{"Diabetes Mellitus, Type 2"},
				Keywords:   []string{"glycemic control"},
			},
			OutcomesModule: &registry.OutcomesModule{
				PrimaryOutcomes: []registry.Outcome{
					{Measure: ptr("Change in HbA1c"), TimeFrame: ptr("Week 26")},
				},
				SecondaryOutcomes: []registry.Outcome{
					{Measure: ptr("Fasting plasma glucose"), Description: ptr("Change from baseline")},
				},
			},
			EligibilityModule: &registry.EligibilityModule{
				EligibilityCriteria: ptr("Inclusion Criteria:\n- Adults"),
				Gender:              ptr("ALL"),
				MinimumAge:          ptr("18 Years"),
				MaximumAge:          ptr("75 Years"),
				HealthyVolunteers:   ptr(false),
			},
			BiospecModule: &registry.BiospecModule{
				BiospecRetention:   ptr("SAMPLES_WITH_DNA"),
				BiospecDescription: ptr("Whole blood"),
			},
		},
	}
}

func TestRecord(t *testing.T) {
	t.Parallel()

	record, err := normalize.Record(fullStudy())
	require.NoError(t, err)

	assert.Equal(t, "NCT01234567", record.NCTID)
	assert.Equal(t, "A Study of Something", *record.BriefTitle)
	assert.Equal(t, "Acme Pharma", *record.SponsorName)
	assert.Equal(t, "RECRUITING", *record.Status)
	assert.Equal(t, "INTERVENTIONAL", *record.StudyType)
	assert.Equal(t, int32(120), *record.Enrollment)

	// Only the first phase survives normalization.
	assert.Equal(t, "PHASE2", *record.Phase)

	assert.Equal(t, time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC), *record.StartDate)
	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), *record.CompletionDate)
	assert.Equal(t, time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), record.LastUpdateDate)

	assert.Equal(t, []string{"Diabetes Mellitus, Type 2"}, record.Conditions.Conditions)
	assert.Equal(t, []string{"glycemic control"}, record.Conditions.Keywords)

	require.Len(t, record.OutcomeMeasures.Primary, 1)
	assert.Equal(t, "Change in HbA1c", *record.OutcomeMeasures.Primary[0].Measure)
	require.Len(t, record.OutcomeMeasures.Secondary, 1)
	assert.Equal(t, "Change from baseline", *record.OutcomeMeasures.Secondary[0].Description)

	assert.Equal(t, "ALL", *record.EligibilityCriteria.Gender)
	assert.Equal(t, "18 Years", *record.EligibilityCriteria.MinAge)
	assert.False(t, *record.EligibilityCriteria.HealthyVolunteers)

	assert.Equal(t, "SAMPLES_WITH_DNA", *record.BiospecRetention)
	assert.Equal(t, "RANDOMIZED", *record.DesignInfo.Allocation)
	assert.Equal(t, []string{"PARTICIPANT", "INVESTIGATOR"}, record.DesignInfo.WhoMasked)
}

func TestRecordMinimal(t *testing.T) {
	t.Parallel()

	study := registry.Study{
		ProtocolSection: &registry.ProtocolSection{
			IdentificationModule: &registry.IdentificationModule{NCTID: ptr("NCT09999999")},
			StatusModule:         &registry.StatusModule{LastUpdatePostDate: ptr("2024-03-05")},
		},
	}

	record, err := normalize.Record(study)
	require.NoError(t, err)

	assert.Equal(t, "NCT09999999", record.NCTID)
	assert.Nil(t, record.BriefTitle)
	assert.Nil(t, record.SponsorName)
	assert.Nil(t, record.Phase)
	assert.Nil(t, record.Enrollment)
	assert.Nil(t, record.StartDate)
	assert.Equal(t, models.Conditions{}, record.Conditions)
	assert.Equal(t, models.OutcomeMeasures{}, record.OutcomeMeasures)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), record.LastUpdateDate)
}

func TestRecordDrops(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		study     registry.Study
		wantNCTID string
	}{
		{
			name:  "missing protocol section",
			study: registry.Study{},
		},
		{
			name: "missing nct id",
			study: registry.Study{
				ProtocolSection: &registry.ProtocolSection{
					StatusModule: &registry.StatusModule{LastUpdatePostDate: ptr("2024-03-05")},
				},
			},
		},
		{
			name: "empty nct id",
			study: registry.Study{
				ProtocolSection: &registry.ProtocolSection{
					IdentificationModule: &registry.IdentificationModule{NCTID: ptr("")},
					StatusModule:         &registry.StatusModule{LastUpdatePostDate: ptr("2024-03-05")},
				},
			},
		},
		{
			name: "missing last update date",
			study: registry.Study{
				ProtocolSection: &registry.ProtocolSection{
					IdentificationModule: &registry.IdentificationModule{NCTID: ptr("NCT01111111")},
					StatusModule:         &registry.StatusModule{},
				},
			},
			wantNCTID: "NCT01111111",
		},
		{
			name: "unparseable last update date",
			study: registry.Study{
				ProtocolSection: &registry.ProtocolSection{
					IdentificationModule: &registry.IdentificationModule{NCTID: ptr("NCT02222222")},
					StatusModule:         &registry.StatusModule{LastUpdatePostDate: ptr("January 20, 2024")},
				},
			},
			wantNCTID: "NCT02222222",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			record, err := normalize.Record(tt.study)
			require.Error(t, err)
			assert.Nil(t, record)

			var dropErr *normalize.DropError
			require.True(t, errors.As(err, &dropErr))
			assert.Equal(t, tt.wantNCTID, dropErr.NCTID)
		})
	}
}

func TestRecordUnparseableSecondaryDates(t *testing.T) {
	t.Parallel()

	study := registry.Study{
		ProtocolSection: &registry.ProtocolSection{
			IdentificationModule: &registry.IdentificationModule{NCTID: ptr("NCT03333333")},
			StatusModule: &registry.StatusModule{
				StartDate:          ptr("not a date"),
				CompletionDate:     ptr("2027"),
				LastUpdatePostDate: ptr("2024-03-05"),
			},
		},
	}

	record, err := normalize.Record(study)
	require.NoError(t, err)
	assert.Nil(t, record.StartDate)
	assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), *record.CompletionDate)
}
