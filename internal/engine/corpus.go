package engine

import (
	"strings"

	"github.com/casewell/go-housing-hazards/internal/models"
)

// BuildCorpus joins all case text into one lower-cased string: case title,
// notes, then each document's name and extracted text, single-space
// separated. Empty fields are skipped so absence contributes nothing.
func BuildCorpus(input models.HazardInput) string {
	parts := make([]string, 0, 2+2*len(input.Documents))
	if input.CaseTitle != "" {
		parts = append(parts, input.CaseTitle)
	}
	if input.Notes != "" {
		parts = append(parts, input.Notes)
	}
	for _, doc := range input.Documents {
		if doc.Name != "" {
			parts = append(parts, doc.Name)
		}
		if doc.ExtractedText != "" {
			parts = append(parts, doc.ExtractedText)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}
