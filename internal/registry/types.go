// Package registry fetches study payloads from the clinicaltrials.gov v2 API.
//
// The payload types mirror the nested protocolSection modules returned by the
// registry. Every field is optional: the API omits whole modules for studies
// that never filled them in, and the normalizer is responsible for tolerating
// that.
package registry

// Page is one page of study payloads. An empty NextPageToken signals
// definitive exhaustion.
type Page struct {
	Studies       []Study `json:"studies"`
	NextPageToken string  `json:"nextPageToken,omitempty"`
}

// Study is a single raw trial payload.
type Study struct {
	ProtocolSection *ProtocolSection `json:"protocolSection,omitempty"`
}

// ProtocolSection groups the per-topic modules of a study.
type ProtocolSection struct {
	StudyType                  *string                     `json:"studyType,omitempty"`
	IdentificationModule       *IdentificationModule       `json:"identificationModule,omitempty"`
	DesignModule               *DesignModule               `json:"designModule,omitempty"`
	StatusModule               *StatusModule               `json:"statusModule,omitempty"`
	SponsorCollaboratorsModule *SponsorCollaboratorsModule `json:"sponsorCollaboratorsModule,omitempty"`
	ConditionsModule           *ConditionsModule           `json:"conditionsModule,omitempty"`
	OutcomesModule             *OutcomesModule             `json:"outcomesModule,omitempty"`
	EligibilityModule          *EligibilityModule          `json:"eligibilityModule,omitempty"`
	BiospecModule              *BiospecModule              `json:"biospecModule,omitempty"`
}

// IdentificationModule carries the study identifiers and titles.
type IdentificationModule struct {
	NCTID         *string `json:"nctId,omitempty"`
	BriefTitle    *string `json:"briefTitle,omitempty"`
	OfficialTitle *string `json:"officialTitle,omitempty"`
}

// DesignModule carries phase and design information.
type DesignModule struct {
	Phases     []string    `json:"phases,omitempty"`
	DesignInfo *DesignInfo `json:"designInfo,omitempty"`
}

// DesignInfo describes how the study is designed.
type DesignInfo struct {
	Allocation        *string      `json:"allocation,omitempty"`
	InterventionModel *string      `json:"interventionModel,omitempty"`
	PrimaryPurpose    *string      `json:"primaryPurpose,omitempty"`
	Masking           *string      `json:"masking,omitempty"`
	MaskingInfo       *MaskingInfo `json:"maskingInfo,omitempty"`
}

// MaskingInfo lists the roles masked in the study.
type MaskingInfo struct {
	WhoMasked []string `json:"whoMasked,omitempty"`
}

// StatusModule carries lifecycle status and dates. Date fields are strings
// because the registry returns partial dates ("2024-01") for some studies.
type StatusModule struct {
	OverallStatus      *string `json:"overallStatus,omitempty"`
	EnrollmentCount    *int32  `json:"enrollmentCount,omitempty"`
	StartDate          *string `json:"startDate,omitempty"`
	CompletionDate     *string `json:"completionDate,omitempty"`
	LastUpdatePostDate *string `json:"lastUpdatePostDate,omitempty"`
}

// SponsorCollaboratorsModule carries the lead sponsor.
type SponsorCollaboratorsModule struct {
	LeadSponsor *LeadSponsor `json:"leadSponsor,omitempty"`
}

// LeadSponsor is the organization responsible for the study.
type LeadSponsor struct {
	Name *string `json:"name,omitempty"`
}

// ConditionsModule carries condition labels and keywords.
type ConditionsModule struct {
	Conditions []string `json:"conditions,omitempty"`
	Keywords   []string `json:"keywords,omitempty"`
}

// OutcomesModule carries primary and secondary outcome descriptors.
type OutcomesModule struct {
	PrimaryOutcomes   []Outcome `json:"primaryOutcomes,omitempty"`
	SecondaryOutcomes []Outcome `json:"secondaryOutcomes,omitempty"`
}

// Outcome is a single outcome descriptor.
type Outcome struct {
	Measure     *string `json:"measure,omitempty"`
	Description *string `json:"description,omitempty"`
	TimeFrame   *string `json:"timeFrame,omitempty"`
}

// EligibilityModule carries participation criteria.
type EligibilityModule struct {
	EligibilityCriteria *string `json:"eligibilityCriteria,omitempty"`
	Gender              *string `json:"gender,omitempty"`
	MinimumAge          *string `json:"minimumAge,omitempty"`
	MaximumAge          *string `json:"maximumAge,omitempty"`
	HealthyVolunteers   *bool   `json:"healthyVolunteers,omitempty"`
}

// BiospecModule carries biospecimen retention metadata.
type BiospecModule struct {
	BiospecRetention   *string `json:"biospecRetention,omitempty"`
	BiospecDescription *string `json:"biospecDescription,omitempty"`
}
