package repository

import (
	"context"
	"testing"
	"time"

	"github.com/casewell/go-housing-hazards/internal/models"
)

func setupTestDB(t *testing.T) *SQLiteDB {
	db, err := NewSQLiteDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test db: %v", err)
	}
	return db
}

func testAssessment(id string, overall models.Severity, urgent bool) *models.Assessment {
	return &models.Assessment{
		ID:           id,
		CaseRef:      "CASE-" + id,
		PracticeArea: "housing_disrepair",
		LandlordType: models.LandlordSocial,
		PackFound:    true,
		Summary: models.HousingHazardSummary{
			DampMouldIndicators:   []string{"damp"},
			DampMouldDetected:     true,
			DampMouldSeverity:     overall,
			VulnerabilityFactors:  []string{},
			VulnerabilitySeverity: models.SeverityLow,
			SymptomIndicators:     []string{},
			DelayIndicators:       []string{},
			HazardLabels:          []string{},
			AwaabBreachRisk:       models.SeverityLow,
			OverallRiskLevel:      overall,
			UrgentAction:          urgent,
			Recommendations:       []string{"Request dated photographic evidence of all damp and mould affected areas"},
		},
		CreatedAt: time.Now(),
	}
}

func TestSQLiteDB_AddAndGet(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	a := testAssessment("test_123", models.SeverityHigh, true)

	if err := db.Add(ctx, a); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	got, err := db.GetByID(ctx, "test_123")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.CaseRef != "CASE-test_123" {
		t.Errorf("expected case ref 'CASE-test_123', got '%s'", got.CaseRef)
	}
	if got.Summary.OverallRiskLevel != models.SeverityHigh {
		t.Errorf("expected HIGH overall, got %s", got.Summary.OverallRiskLevel)
	}
	if !got.Summary.UrgentAction {
		t.Error("expected urgent action to round-trip")
	}
	if len(got.Summary.Recommendations) != 1 {
		t.Errorf("expected 1 recommendation, got %d", len(got.Summary.Recommendations))
	}
}

func TestSQLiteDB_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	_, err := db.GetByID(context.Background(), "nonexistent")
	if err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSQLiteDB_List_WithFilters(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	assessments := []*models.Assessment{
		testAssessment("a1", models.SeverityLow, false),
		testAssessment("a2", models.SeverityMedium, false),
		testAssessment("a3", models.SeverityHigh, true),
		testAssessment("a4", models.SeverityCritical, true),
	}
	for _, a := range assessments {
		if err := db.Add(ctx, a); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	// Min severity filter respects the severity order, not string order.
	minHigh := models.SeverityHigh
	results, err := db.List(ctx, Filter{MinOverall: &minHigh})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("expected 2 assessments at HIGH or above, got %d", len(results))
	}

	// Urgent filter
	urgent := true
	results, err = db.List(ctx, Filter{UrgentOnly: &urgent})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("expected 2 urgent assessments, got %d", len(results))
	}

	// Limit
	results, err = db.List(ctx, Filter{Limit: 3})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(results) != 3 {
		t.Errorf("expected 3 assessments with limit, got %d", len(results))
	}

	// Case ref
	ref := "CASE-a2"
	results, err = db.List(ctx, Filter{CaseRef: &ref})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(results) != 1 || results[0].ID != "a2" {
		t.Errorf("expected only a2, got %v", results)
	}
}

func TestSQLiteDB_List_SinceFilter(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	old := testAssessment("old", models.SeverityLow, false)
	old.CreatedAt = time.Now().AddDate(0, 0, -30)
	recent := testAssessment("recent", models.SeverityLow, false)

	db.Add(ctx, old)
	db.Add(ctx, recent)

	since := time.Now().AddDate(0, 0, -7)
	results, err := db.List(ctx, Filter{Since: &since})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(results) != 1 || results[0].ID != "recent" {
		t.Errorf("expected only the recent assessment, got %d results", len(results))
	}
}
