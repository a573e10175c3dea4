package packs

import (
	"fmt"
	"strings"
)

// IndicatorPack holds the phrase lexicons for one practice area. The engine
// treats it as read-only configuration.
type IndicatorPack struct {
	PracticeArea              string   `yaml:"practiceArea" json:"practiceArea"`
	DampMouldFactors          []string `yaml:"dampMouldFactors" json:"dampMouldFactors"`
	VulnerableOccupantFactors []string `yaml:"vulnerableOccupantFactors" json:"vulnerableOccupantFactors"`
	SymptomKeywords           []string `yaml:"symptomKeywords" json:"symptomKeywords"`
	DelayPatterns             []string `yaml:"delayPatterns" json:"delayPatterns"`
}

// Validate rejects packs that indicate a configuration bug rather than a
// legitimately empty lexicon: no lists at all, or blank phrases in any list.
// A pack with some empty lists is allowed.
func (p IndicatorPack) Validate() error {
	if p.PracticeArea == "" {
		return fmt.Errorf("indicator pack: missing practice area")
	}
	total := len(p.DampMouldFactors) + len(p.VulnerableOccupantFactors) +
		len(p.SymptomKeywords) + len(p.DelayPatterns)
	if total == 0 {
		return fmt.Errorf("indicator pack %q: no phrase lists defined", p.PracticeArea)
	}
	lists := map[string][]string{
		"dampMouldFactors":          p.DampMouldFactors,
		"vulnerableOccupantFactors": p.VulnerableOccupantFactors,
		"symptomKeywords":           p.SymptomKeywords,
		"delayPatterns":             p.DelayPatterns,
	}
	for name, phrases := range lists {
		for i, phrase := range phrases {
			if strings.TrimSpace(phrase) == "" {
				return fmt.Errorf("indicator pack %q: %s[%d] is blank", p.PracticeArea, name, i)
			}
		}
	}
	return nil
}
