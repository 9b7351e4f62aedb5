// Package models defines the flat trial record persisted by the sync pipeline.
package models

import "time"

// TrialRecord is one normalized clinical trial, keyed by its registry NCT ID.
// Pointer fields are nullable in the source payload and in the store.
type TrialRecord struct {
	NCTID          string
	BriefTitle     *string
	OfficialTitle  *string
	SponsorName    *string
	Status         *string
	Phase          *string
	StudyType      *string
	Enrollment     *int32
	StartDate      *time.Time
	CompletionDate *time.Time

	// LastUpdateDate is the synchronization watermark field. Records without
	// it are dropped during normalization; it can never be zero here.
	LastUpdateDate time.Time

	Conditions          Conditions
	OutcomeMeasures     OutcomeMeasures
	EligibilityCriteria EligibilityCriteria
	BiospecRetention    *string
	BiospecDescription  *string
	DesignInfo          DesignInfo
}

// Conditions packs the source's condition labels and keywords verbatim.
type Conditions struct {
	Conditions []string `json:"conditions"`
	Keywords   []string `json:"keywords"`
}

// OutcomeMeasure is a single outcome descriptor as reported by the registry.
type OutcomeMeasure struct {
	Measure     *string `json:"measure,omitempty"`
	Description *string `json:"description,omitempty"`
	TimeFrame   *string `json:"time_frame,omitempty"`
}

// OutcomeMeasures packs primary and secondary outcome descriptors.
type OutcomeMeasures struct {
	Primary   []OutcomeMeasure `json:"primary"`
	Secondary []OutcomeMeasure `json:"secondary"`
}

// EligibilityCriteria packs the source's eligibility module.
type EligibilityCriteria struct {
	Criteria          *string `json:"criteria"`
	Gender            *string `json:"gender"`
	MinAge            *string `json:"min_age"`
	MaxAge            *string `json:"max_age"`
	HealthyVolunteers *bool   `json:"healthy_volunteers"`
}

// DesignInfo packs the source's study design module.
type DesignInfo struct {
	Allocation        *string  `json:"allocation"`
	InterventionModel *string  `json:"intervention_model"`
	PrimaryPurpose    *string  `json:"primary_purpose"`
	Masking           *string  `json:"masking"`
	WhoMasked         []string `json:"who_masked"`
}
