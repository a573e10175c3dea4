// Package engine implements the rule-based hazard classification for housing
// disrepair cases: lexicon matching over case text, per-dimension severity
// scoring, the Awaab's Law deadline countdown, HHSRS category detection, and
// aggregation into one overall risk level with recommended actions.
//
// Every function here is pure: no I/O, no clock reads, no shared state.
// Callers inject the indicator pack and the evaluation time, so identical
// inputs always produce identical summaries.
package engine

import (
	"time"

	"github.com/casewell/go-housing-hazards/internal/models"
	"github.com/casewell/go-housing-hazards/internal/packs"
)

// EmptySummary is the defined baseline: nothing detected, all severities LOW,
// empty lists. Returned whenever there is no evidence or no pack.
func EmptySummary() models.HousingHazardSummary {
	return models.HousingHazardSummary{
		DampMouldIndicators:   []string{},
		DampMouldSeverity:     models.SeverityLow,
		VulnerabilityFactors:  []string{},
		VulnerabilitySeverity: models.SeverityLow,
		SymptomIndicators:     []string{},
		DelayIndicators:       []string{},
		HazardLabels:          []string{},
		AwaabBreachRisk:       models.SeverityLow,
		OverallRiskLevel:      models.SeverityLow,
		Recommendations:       []string{},
	}
}

// Evaluate runs the full pipeline over one case. Missing optional fields
// degrade to the empty baseline for their dimension; the function never
// fails on input variation.
func Evaluate(input models.HazardInput, pack packs.IndicatorPack, now time.Time) models.HousingHazardSummary {
	s := EmptySummary()
	corpus := BuildCorpus(input)

	s.DampMouldIndicators = MatchPhrases(corpus, pack.DampMouldFactors)
	s.DampMouldDetected = len(s.DampMouldIndicators) > 0

	s.VulnerabilityFactors = VulnerabilityFactors(MatchPhrases(corpus, pack.VulnerableOccupantFactors), input)
	s.VulnerableOccupantsDetected = len(s.VulnerabilityFactors) > 0

	s.SymptomIndicators = MatchPhrases(corpus, pack.SymptomKeywords)
	s.HealthSymptomsDetected = len(s.SymptomIndicators) > 0

	s.DelayIndicators = MatchPhrases(corpus, pack.DelayPatterns)
	s.DelayPatternsDetected = len(s.DelayIndicators) > 0

	s.HHSRSCategory, s.HazardLabels = ClassifyHHSRS(corpus)

	// The statutory regime is gated on landlord type and hazard type.
	s.AwaabApplies = input.LandlordType == models.LandlordSocial && s.DampMouldDetected
	if s.AwaabApplies {
		s.AwaabDeadlineDays = DeadlineDays(input.FirstComplaintDate, now)
	}

	s.DampMouldSeverity = DampMouldSeverity(len(s.DampMouldIndicators), s.VulnerableOccupantsDetected)
	s.VulnerabilitySeverity = VulnerabilitySeverity(len(s.VulnerabilityFactors), s.HealthSymptomsDetected)
	s.AwaabBreachRisk = AwaabBreachRisk(s.AwaabApplies, s.AwaabDeadlineDays, s.DelayPatternsDetected)

	s.OverallRiskLevel = OverallSeverity(s.DampMouldSeverity, s.VulnerabilitySeverity, s.AwaabBreachRisk, s.HHSRSCategory)
	s.UrgentAction = UrgentAction(s.HHSRSCategory, s.OverallRiskLevel, s.AwaabApplies, s.AwaabDeadlineDays, s.DampMouldDetected, s.VulnerableOccupantsDetected)

	s.Recommendations = Recommendations(s)
	return s
}
