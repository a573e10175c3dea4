package engine

import (
	"slices"
	"strings"

	"github.com/casewell/go-housing-hazards/internal/models"
)

// MatchPhrases returns the subset of phrases present in the corpus as
// case-insensitive substrings, in phrase-list order. Containment is literal
// substring matching, not word-boundary matching: a phrase occurring inside a
// longer word still counts. That trade-off is part of the contract the packs
// are tuned against.
func MatchPhrases(corpus string, phrases []string) []string {
	matched := []string{}
	for _, phrase := range phrases {
		if phrase == "" {
			continue
		}
		if strings.Contains(corpus, strings.ToLower(phrase)) {
			matched = append(matched, phrase)
		}
	}
	return matched
}

// Fixed labels for the explicit occupant flags.
const (
	labelChild    = "child"
	labelElderly  = "elderly"
	labelDisabled = "disabled"
)

// VulnerabilityFactors unions the text-matched vulnerability phrases with the
// explicit occupant flags. Flag labels are appended only when text matching
// did not already produce them.
func VulnerabilityFactors(matched []string, input models.HazardInput) []string {
	factors := slices.Clone(matched)
	if factors == nil {
		factors = []string{}
	}
	if input.HasChildOccupant && !slices.Contains(factors, labelChild) {
		factors = append(factors, labelChild)
	}
	if input.HasElderlyOccupant && !slices.Contains(factors, labelElderly) {
		factors = append(factors, labelElderly)
	}
	if input.HasDisabledOccupant && !slices.Contains(factors, labelDisabled) {
		factors = append(factors, labelDisabled)
	}
	return factors
}
