package models

import "time"

// HHSRSCategory is the Housing Health and Safety Rating System band.
// Empty means no category was identified in the case material.
type HHSRSCategory string

const (
	HHSRSNone      HHSRSCategory = ""
	HHSRSCategory1 HHSRSCategory = "1"
	HHSRSCategory2 HHSRSCategory = "2"
)

// HousingHazardSummary is the flat output of one evaluation. Field names
// match what the case-management front end reads.
type HousingHazardSummary struct {
	DampMouldDetected   bool     `json:"dampMouldDetected"`
	DampMouldIndicators []string `json:"dampMouldIndicators"`
	DampMouldSeverity   Severity `json:"dampMouldSeverity"`

	VulnerableOccupantsDetected bool     `json:"vulnerableOccupantsDetected"`
	VulnerabilityFactors        []string `json:"vulnerabilityFactors"`
	VulnerabilitySeverity       Severity `json:"vulnerabilitySeverity"`

	HealthSymptomsDetected bool     `json:"healthSymptomsDetected"`
	SymptomIndicators      []string `json:"symptomIndicators"`

	DelayPatternsDetected bool     `json:"delayPatternsDetected"`
	DelayIndicators       []string `json:"delayIndicators"`

	HHSRSCategory HHSRSCategory `json:"hhsrsCategory,omitempty"`
	HazardLabels  []string      `json:"hazardLabels"`

	AwaabApplies      bool     `json:"awaabApplies"`
	AwaabDeadlineDays *int     `json:"awaabDeadlineDays,omitempty"`
	AwaabBreachRisk   Severity `json:"awaabBreachRisk"`

	OverallRiskLevel Severity `json:"overallRiskLevel"`
	UrgentAction     bool     `json:"urgentAction"`

	Recommendations []string `json:"recommendations"`
}

// Assessment wraps one evaluation result for storage and the API.
type Assessment struct {
	ID           string               `json:"id"`
	CaseRef      string               `json:"caseRef"`
	PracticeArea string               `json:"practiceArea"`
	LandlordType LandlordType         `json:"landlordType"`
	PackFound    bool                 `json:"packFound"`
	Summary      HousingHazardSummary `json:"summary"`
	CreatedAt    time.Time            `json:"createdAt"`
}
