package engine

import "github.com/casewell/go-housing-hazards/internal/models"

// DampMouldSeverity scores the damp/mould dimension. The vulnerable-occupant
// rule takes priority over the plain-count thresholds: two indicators plus a
// vulnerable occupant is already CRITICAL.
func DampMouldSeverity(indicatorCount int, hasVulnerableOccupants bool) models.Severity {
	switch {
	case indicatorCount == 0:
		return models.SeverityLow
	case hasVulnerableOccupants && indicatorCount >= 2:
		return models.SeverityCritical
	case indicatorCount >= 3:
		return models.SeverityHigh
	case indicatorCount >= 2:
		return models.SeverityMedium
	default:
		return models.SeverityLow
	}
}

// VulnerabilitySeverity scores the occupant-vulnerability dimension. Any
// nonzero factor count without symptoms is at least MEDIUM; symptoms on top
// of any factor escalate straight to CRITICAL.
func VulnerabilitySeverity(factorCount int, hasHealthSymptoms bool) models.Severity {
	switch {
	case factorCount == 0:
		return models.SeverityLow
	case hasHealthSymptoms:
		return models.SeverityCritical
	case factorCount >= 2:
		return models.SeverityHigh
	default:
		return models.SeverityMedium
	}
}

// AwaabBreachRisk scores the statutory-breach dimension. When the deadline
// countdown is running the day thresholds win; otherwise delay patterns
// escalate to HIGH, and any applicable case is at least MEDIUM.
func AwaabBreachRisk(applies bool, deadlineDays *int, hasDelayPatterns bool) models.Severity {
	if !applies {
		return models.SeverityLow
	}
	if deadlineDays != nil {
		switch {
		case *deadlineDays <= 0:
			return models.SeverityCritical
		case *deadlineDays <= 7:
			return models.SeverityHigh
		case *deadlineDays <= 14:
			return models.SeverityMedium
		}
	} else if hasDelayPatterns {
		return models.SeverityHigh
	}
	return models.SeverityMedium
}
