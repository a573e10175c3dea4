package engine

import (
	"strings"

	"github.com/casewell/go-housing-hazards/internal/models"
)

var (
	category1Markers = []string{"category 1", "cat 1", "cat1"}
	category2Markers = []string{"category 2", "cat 2", "cat2"}
)

// ClassifyHHSRS scans the lower-cased corpus for HHSRS category references.
// Category 1 wins over category 2 even when both appear. Returns the category
// and a one-element descriptive label list, or none/empty.
func ClassifyHHSRS(corpus string) (models.HHSRSCategory, []string) {
	for _, marker := range category1Markers {
		if strings.Contains(corpus, marker) {
			return models.HHSRSCategory1, []string{"HHSRS Category 1 hazard referenced in case material"}
		}
	}
	for _, marker := range category2Markers {
		if strings.Contains(corpus, marker) {
			return models.HHSRSCategory2, []string{"HHSRS Category 2 hazard referenced in case material"}
		}
	}
	return models.HHSRSNone, []string{}
}
