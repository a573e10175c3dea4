package models

import "testing"

func TestSeverityOrder(t *testing.T) {
	ordered := []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}
	for i := 1; i < len(ordered); i++ {
		if ordered[i].Rank() <= ordered[i-1].Rank() {
			t.Errorf("expected %s > %s in severity order", ordered[i], ordered[i-1])
		}
	}

	// Lexical comparison would get this wrong: "CRITICAL" < "HIGH" as strings.
	if !SeverityCritical.AtLeast(SeverityHigh) {
		t.Error("CRITICAL must rank at least HIGH")
	}
	if SeverityMedium.AtLeast(SeverityHigh) {
		t.Error("MEDIUM must not rank at least HIGH")
	}
}

func TestMaxSeverity(t *testing.T) {
	if got := MaxSeverity(); got != SeverityLow {
		t.Errorf("expected LOW for no arguments, got %s", got)
	}
	if got := MaxSeverity(SeverityMedium, SeverityCritical, SeverityHigh); got != SeverityCritical {
		t.Errorf("expected CRITICAL, got %s", got)
	}
}

func TestParseSeverity(t *testing.T) {
	if sev, ok := ParseSeverity("HIGH"); !ok || sev != SeverityHigh {
		t.Errorf("expected HIGH, got %s (ok=%v)", sev, ok)
	}
	if _, ok := ParseSeverity("severe"); ok {
		t.Error("expected unknown severity to be rejected")
	}
}

func TestParseLandlordType(t *testing.T) {
	tests := []struct {
		in   string
		want LandlordType
	}{
		{"social", LandlordSocial},
		{"SOCIAL", LandlordSocial},
		{" private ", LandlordPrivate},
		{"unknown", LandlordUnknown},
		{"housing association", LandlordUnknown},
		{"", LandlordUnknown},
	}
	for _, tt := range tests {
		if got := ParseLandlordType(tt.in); got != tt.want {
			t.Errorf("ParseLandlordType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
