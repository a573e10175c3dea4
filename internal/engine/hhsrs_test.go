package engine

import (
	"testing"

	"github.com/casewell/go-housing-hazards/internal/models"
)

func TestClassifyHHSRS(t *testing.T) {
	tests := []struct {
		name   string
		corpus string
		want   models.HHSRSCategory
	}{
		{"no category", "damp and mould throughout", models.HHSRSNone},
		{"category 1 spelled out", "surveyor found a category 1 hazard", models.HHSRSCategory1},
		{"cat 1 abbreviated", "assessed as cat 1 under hhsrs", models.HHSRSCategory1},
		{"cat1 no space", "hazard rated cat1", models.HHSRSCategory1},
		{"category 2 spelled out", "this is a category 2 hazard", models.HHSRSCategory2},
		{"cat 2 abbreviated", "rated cat 2", models.HHSRSCategory2},
		{"cat2 no space", "rated cat2", models.HHSRSCategory2},
		{"category 1 wins over category 2", "category 2 issues and a category 1 hazard", models.HHSRSCategory1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, labels := ClassifyHHSRS(tt.corpus)
			if got != tt.want {
				t.Errorf("ClassifyHHSRS(%q) = %q, want %q", tt.corpus, got, tt.want)
			}
			if tt.want == models.HHSRSNone && len(labels) != 0 {
				t.Errorf("expected no hazard labels, got %v", labels)
			}
			if tt.want != models.HHSRSNone && len(labels) != 1 {
				t.Errorf("expected one hazard label, got %v", labels)
			}
		})
	}
}
