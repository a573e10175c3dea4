package models

type Severity string

const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

// severityRank defines the total order LOW < MEDIUM < HIGH < CRITICAL.
// Severities must never be compared lexically.
var severityRank = map[Severity]int{
	SeverityLow:      0,
	SeverityMedium:   1,
	SeverityHigh:     2,
	SeverityCritical: 3,
}

// Rank returns the ordinal position of s. Unknown values rank below LOW.
func (s Severity) Rank() int {
	if r, ok := severityRank[s]; ok {
		return r
	}
	return -1
}

// AtLeast reports whether s is at or above min in the severity order.
func (s Severity) AtLeast(min Severity) bool {
	return s.Rank() >= min.Rank()
}

// MaxSeverity returns the highest of the given severities, or LOW when none
// are given.
func MaxSeverity(severities ...Severity) Severity {
	max := SeverityLow
	for _, s := range severities {
		if s.Rank() > max.Rank() {
			max = s
		}
	}
	return max
}

// ParseSeverity maps a string to a Severity, returning false for anything
// outside the four known levels.
func ParseSeverity(s string) (Severity, bool) {
	sev := Severity(s)
	_, ok := severityRank[sev]
	return sev, ok
}
