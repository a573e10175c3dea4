package engine

import (
	"math"
	"time"
)

// ComplianceWindowDays is the fixed Awaab's Law window: 14 days to
// investigate plus 7 to begin remedial works. Changing it is a policy
// decision, not a tuning knob.
const ComplianceWindowDays = 21

// DeadlineDays computes the days remaining in the statutory window, clamped
// at zero. Returns nil when no valid complaint date is available — absence
// means the clock is not running, which is distinct from a deadline of zero.
// The caller supplies now; there is no ambient clock here.
func DeadlineDays(firstComplaint *time.Time, now time.Time) *int {
	if firstComplaint == nil || firstComplaint.IsZero() {
		return nil
	}
	// Floor, not truncate: a future-dated complaint (negative elapsed time)
	// must round down, so partial days never shorten the window.
	daysSince := int(math.Floor(now.Sub(*firstComplaint).Hours() / 24))
	remaining := ComplianceWindowDays - daysSince
	if remaining < 0 {
		remaining = 0
	}
	return &remaining
}
