package engine

import "github.com/casewell/go-housing-hazards/internal/models"

// OverallSeverity combines the three dimension severities and the HHSRS
// category by priority, first match wins. A Category 1 hazard is CRITICAL
// regardless of the dimensions; Category 2 sits between the HIGH and MEDIUM
// dimension checks.
func OverallSeverity(damp, vulnerability, breach models.Severity, category models.HHSRSCategory) models.Severity {
	dims := []models.Severity{damp, vulnerability, breach}

	anyAt := func(level models.Severity) bool {
		for _, d := range dims {
			if d == level {
				return true
			}
		}
		return false
	}

	switch {
	case category == models.HHSRSCategory1:
		return models.SeverityCritical
	case anyAt(models.SeverityCritical):
		return models.SeverityCritical
	case anyAt(models.SeverityHigh):
		return models.SeverityHigh
	case category == models.HHSRSCategory2:
		return models.SeverityMedium
	case anyAt(models.SeverityMedium):
		return models.SeverityMedium
	default:
		return models.SeverityLow
	}
}

// UrgentAction decides the urgent flag independently of overall severity.
// The damp+vulnerable clause can flag urgency on a MEDIUM overall; urgency
// and overall severity are separate signals and must stay that way.
func UrgentAction(category models.HHSRSCategory, overall models.Severity, awaabApplies bool, deadlineDays *int, dampDetected, vulnerableDetected bool) bool {
	if category == models.HHSRSCategory1 {
		return true
	}
	if overall == models.SeverityCritical {
		return true
	}
	if awaabApplies {
		days := 99
		if deadlineDays != nil {
			days = *deadlineDays
		}
		if days <= 7 {
			return true
		}
	}
	if dampDetected && vulnerableDetected {
		return true
	}
	return false
}
