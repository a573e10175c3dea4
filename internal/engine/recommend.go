package engine

import (
	"fmt"

	"github.com/casewell/go-housing-hazards/internal/models"
)

// Recommendations assembles the action list from fixed, ordered blocks:
// damp/mould evidence, vulnerable occupants, HHSRS category, Awaab's Law
// deadline, delay patterns. Blocks are appended only when their condition is
// met; nothing is reordered or deduplicated across blocks, so output order is
// stable for a given summary.
func Recommendations(s models.HousingHazardSummary) []string {
	recs := []string{}

	if s.DampMouldDetected {
		recs = append(recs, "Request dated photographic evidence of all damp and mould affected areas")
		if s.HHSRSCategory == models.HHSRSNone {
			recs = append(recs, "Commission an independent HHSRS survey of the property")
		}
	}

	if s.VulnerableOccupantsDetected {
		recs = append(recs, "Document the needs of all vulnerable occupants in the household")
		if s.HealthSymptomsDetected {
			recs = append(recs, "Request medical evidence linking reported symptoms to the housing conditions")
		}
	}

	switch s.HHSRSCategory {
	case models.HHSRSCategory1:
		recs = append(recs,
			"Category 1 hazard identified: this requires urgent attention",
			"Consider an emergency injunction or referral to the local authority")
	case models.HHSRSCategory2:
		recs = append(recs, "Category 2 hazard identified: monitor the property for escalation")
	}

	if s.AwaabApplies {
		if s.AwaabDeadlineDays != nil && *s.AwaabDeadlineDays <= 7 {
			recs = append(recs, fmt.Sprintf("URGENT: Awaab's Law deadline in %d days - the landlord must begin remedial works", *s.AwaabDeadlineDays))
		}
		recs = append(recs, "Document all landlord communications regarding investigation and repair")
	}

	if s.DelayPatternsDetected {
		recs = append(recs,
			"Record all instances of landlord delay with dates",
			"Consider escalation under the pre-action protocol for housing conditions claims")
	}

	return recs
}
