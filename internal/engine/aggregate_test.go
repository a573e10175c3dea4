package engine

import (
	"testing"

	"github.com/casewell/go-housing-hazards/internal/models"
)

func TestOverallSeverity(t *testing.T) {
	low, med, high, crit := models.SeverityLow, models.SeverityMedium, models.SeverityHigh, models.SeverityCritical

	tests := []struct {
		name                        string
		damp, vulnerability, breach models.Severity
		category                    models.HHSRSCategory
		want                        models.Severity
	}{
		{"all low", low, low, low, models.HHSRSNone, low},
		{"category 1 forces critical over all-low dimensions", low, low, low, models.HHSRSCategory1, crit},
		{"any critical dimension", low, crit, low, models.HHSRSNone, crit},
		{"any high dimension", high, low, low, models.HHSRSNone, high},
		{"high beats category 2", low, high, low, models.HHSRSCategory2, high},
		{"category 2 beats medium dimensions", med, low, low, models.HHSRSCategory2, med},
		{"category 2 alone", low, low, low, models.HHSRSCategory2, med},
		{"any medium dimension", low, low, med, models.HHSRSNone, med},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OverallSeverity(tt.damp, tt.vulnerability, tt.breach, tt.category)
			if got != tt.want {
				t.Errorf("OverallSeverity(%s, %s, %s, %q) = %s, want %s",
					tt.damp, tt.vulnerability, tt.breach, tt.category, got, tt.want)
			}
		})
	}
}

func TestUrgentAction(t *testing.T) {
	days := func(n int) *int { return &n }

	tests := []struct {
		name       string
		category   models.HHSRSCategory
		overall    models.Severity
		awaab      bool
		deadline   *int
		damp, vuln bool
		want       bool
	}{
		{"nothing urgent", models.HHSRSNone, models.SeverityLow, false, nil, false, false, false},
		{"category 1", models.HHSRSCategory1, models.SeverityLow, false, nil, false, false, true},
		{"critical overall", models.HHSRSNone, models.SeverityCritical, false, nil, false, false, true},
		{"awaab deadline within week", models.HHSRSNone, models.SeverityMedium, true, days(7), false, false, true},
		{"awaab deadline comfortable", models.HHSRSNone, models.SeverityMedium, true, days(15), false, false, false},
		{"awaab no deadline defaults non-urgent", models.HHSRSNone, models.SeverityMedium, true, nil, false, false, false},
		{"damp plus vulnerable", models.HHSRSNone, models.SeverityMedium, false, nil, true, true, true},
		{"damp alone", models.HHSRSNone, models.SeverityMedium, false, nil, true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UrgentAction(tt.category, tt.overall, tt.awaab, tt.deadline, tt.damp, tt.vuln)
			if got != tt.want {
				t.Errorf("UrgentAction(...) = %v, want %v", got, tt.want)
			}
		})
	}
}

// Urgency and overall severity are independent signals: the damp+vulnerable
// clause can flag urgency while the overall level stays MEDIUM.
func TestUrgentAction_TrueOnMediumOverall(t *testing.T) {
	overall := OverallSeverity(models.SeverityMedium, models.SeverityMedium, models.SeverityLow, models.HHSRSNone)
	if overall != models.SeverityMedium {
		t.Fatalf("expected MEDIUM overall, got %s", overall)
	}

	urgent := UrgentAction(models.HHSRSNone, overall, false, nil, true, true)
	if !urgent {
		t.Error("expected urgent action despite MEDIUM overall severity")
	}
}
