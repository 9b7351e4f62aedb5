// Package normalize flattens raw registry study payloads into trial records.
package normalize

import (
	"fmt"
	"time"

	"github.com/ctmis/ctgov-sync/internal/models"
	"github.com/ctmis/ctgov-sync/internal/registry"
)

// dateLayouts are tried in order. The registry returns full dates for most
// studies but only year-month or year for older ones.
var dateLayouts = []string{"2006-01-02", "2006-01", "2006"}

// DropError reports a study that cannot be normalized. Dropped studies are
// logged and skipped; they never abort a sync run.
type DropError struct {
	// NCTID is the study identifier if one was present, otherwise empty.
	NCTID string

	// Reason describes the missing or malformed field.
	Reason string
}

// Error returns the error message.
func (e *DropError) Error() string {
	if e.NCTID == "" {
		return fmt.Sprintf("dropping study without identifier: %s", e.Reason)
	}
	return fmt.Sprintf("dropping study %s: %s", e.NCTID, e.Reason)
}

// Record flattens a single study into a trial record.
//
// A study is dropped when it lacks an NCT ID or a parseable last update
// posted date; everything else is optional and normalizes to nil or empty.
func Record(study registry.Study) (*models.TrialRecord, error) {
	protocol := study.ProtocolSection
	if protocol == nil {
		return nil, &DropError{Reason: "missing protocolSection"}
	}

	ident := protocol.IdentificationModule
	if ident == nil || ident.NCTID == nil || *ident.NCTID == "" {
		return nil, &DropError{Reason: "missing nctId"}
	}
	nctID := *ident.NCTID

	status := protocol.StatusModule
	if status == nil || status.LastUpdatePostDate == nil {
		return nil, &DropError{NCTID: nctID, Reason: "missing lastUpdatePostDate"}
	}
	lastUpdate, err := parseDate(*status.LastUpdatePostDate)
	if err != nil {
		return nil, &DropError{
			NCTID:  nctID,
			Reason: fmt.Sprintf("unparseable lastUpdatePostDate %q", *status.LastUpdatePostDate),
		}
	}

	record := &models.TrialRecord{
		NCTID:          nctID,
		BriefTitle:     ident.BriefTitle,
		OfficialTitle:  ident.OfficialTitle,
		StudyType:      protocol.StudyType,
		Status:         status.OverallStatus,
		Enrollment:     status.EnrollmentCount,
		StartDate:      parseOptionalDate(status.StartDate),
		CompletionDate: parseOptionalDate(status.CompletionDate),
		LastUpdateDate: *lastUpdate,
	}

	if sponsors := protocol.SponsorCollaboratorsModule; sponsors != nil && sponsors.LeadSponsor != nil {
		record.SponsorName = sponsors.LeadSponsor.Name
	}

	if design := protocol.DesignModule; design != nil {
		if len(design.Phases) > 0 {
			phase := design.Phases[0]
			record.Phase = &phase
		}
		if info := design.DesignInfo; info != nil {
			record.DesignInfo = models.DesignInfo{
				Allocation:        info.Allocation,
				InterventionModel: info.InterventionModel,
				PrimaryPurpose:    info.PrimaryPurpose,
				Masking:           info.Masking,
			}
			if info.MaskingInfo != nil {
				record.DesignInfo.WhoMasked = info.MaskingInfo.WhoMasked
			}
		}
	}

	if conditions := protocol.ConditionsModule; conditions != nil {
		record.Conditions = models.Conditions{
			Conditions: conditions.Conditions,
			Keywords:   conditions.Keywords,
		}
	}

	if outcomes := protocol.OutcomesModule; outcomes != nil {
		record.OutcomeMeasures = models.OutcomeMeasures{
			Primary:   outcomeMeasures(outcomes.PrimaryOutcomes),
			Secondary: outcomeMeasures(outcomes.SecondaryOutcomes),
		}
	}

	if eligibility := protocol.EligibilityModule; eligibility != nil {
		record.EligibilityCriteria = models.EligibilityCriteria{
			Criteria:          eligibility.EligibilityCriteria,
			Gender:            eligibility.Gender,
			MinAge:            eligibility.MinimumAge,
			MaxAge:            eligibility.MaximumAge,
			HealthyVolunteers: eligibility.HealthyVolunteers,
		}
	}

	if biospec := protocol.BiospecModule; biospec != nil {
		record.BiospecRetention = biospec.BiospecRetention
		record.BiospecDescription = biospec.BiospecDescription
	}

	return record, nil
}

func outcomeMeasures(outcomes []registry.Outcome) []models.OutcomeMeasure {
	if len(outcomes) == 0 {
		return nil
	}
	measures := make([]models.OutcomeMeasure, 0, len(outcomes))
	for _, o := range outcomes {
		measures = append(measures, models.OutcomeMeasure{
			Measure:     o.Measure,
			Description: o.Description,
			TimeFrame:   o.TimeFrame,
		})
	}
	return measures
}

func parseDate(value string) (*time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unrecognized date format: %q", value)
}

// parseOptionalDate returns nil for missing or unparseable dates. Secondary
// dates never cause a drop.
func parseOptionalDate(value *string) *time.Time {
	if value == nil {
		return nil
	}
	t, err := parseDate(*value)
	if err != nil {
		return nil
	}
	return t
}
