package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/casewell/go-housing-hazards/internal/models"
)

type SQLiteDB struct {
	db *sql.DB
}

func NewSQLiteDB(path string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error while pinging database: %w", err)
	}

	s := &SQLiteDB{
		db: db,
	}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("error while migrating database: %w", err)
	}

	return s, nil
}

func (s *SQLiteDB) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS assessments (
			id TEXT PRIMARY KEY,
			case_ref TEXT NOT NULL,
			practice_area TEXT NOT NULL,
			landlord_type TEXT NOT NULL,
			pack_found INTEGER NOT NULL,
			overall_risk TEXT NOT NULL,
			urgent_action INTEGER NOT NULL,
			summary BLOB NOT NULL,
			created_at DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_assessments_created_at ON assessments(created_at);
		CREATE INDEX IF NOT EXISTS idx_assessments_case_ref ON assessments(case_ref);
		CREATE INDEX IF NOT EXISTS idx_assessments_overall_risk ON assessments(overall_risk);
  	`

	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteDB) Close() error {
	return s.db.Close()
}

func (s *SQLiteDB) Add(ctx context.Context, a *models.Assessment) error {
	summary, err := json.Marshal(a.Summary)
	if err != nil {
		return fmt.Errorf("error encoding summary: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO assessments
			(id, case_ref, practice_area, landlord_type, pack_found, overall_risk, urgent_action, summary, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.CaseRef, a.PracticeArea, string(a.LandlordType), a.PackFound,
		string(a.Summary.OverallRiskLevel), a.Summary.UrgentAction, summary, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error inserting assessment: %w", err)
	}
	return nil
}

func (s *SQLiteDB) GetByID(ctx context.Context, id string) (*models.Assessment, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, case_ref, practice_area, landlord_type, pack_found, summary, created_at
		FROM assessments WHERE id = ?`, id)

	a, err := scanAssessment(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching assessment: %w", err)
	}
	return a, nil
}

func (s *SQLiteDB) List(ctx context.Context, opts Filter) ([]models.Assessment, error) {
	query := `
		SELECT id, case_ref, practice_area, landlord_type, pack_found, summary, created_at
		FROM assessments`
	var conds []string
	var args []any

	if opts.Since != nil {
		conds = append(conds, "created_at >= ?")
		args = append(args, *opts.Since)
	}
	if opts.MinOverall != nil {
		// Severity is stored as text; translate the order into an IN set.
		levels := severitiesAtOrAbove(*opts.MinOverall)
		placeholders := make([]string, len(levels))
		for i, lvl := range levels {
			placeholders[i] = "?"
			args = append(args, string(lvl))
		}
		conds = append(conds, fmt.Sprintf("overall_risk IN (%s)", strings.Join(placeholders, ", ")))
	}
	if opts.UrgentOnly != nil {
		conds = append(conds, "urgent_action = ?")
		args = append(args, *opts.UrgentOnly)
	}
	if opts.LandlordType != nil {
		conds = append(conds, "landlord_type = ?")
		args = append(args, string(*opts.LandlordType))
	}
	if opts.CaseRef != nil {
		conds = append(conds, "case_ref = ?")
		args = append(args, *opts.CaseRef)
	}

	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"
	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}
	if opts.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, opts.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing assessments: %w", err)
	}
	defer rows.Close()

	var out []models.Assessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning assessment: %w", err)
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func severitiesAtOrAbove(min models.Severity) []models.Severity {
	all := []models.Severity{
		models.SeverityLow, models.SeverityMedium, models.SeverityHigh, models.SeverityCritical,
	}
	var out []models.Severity
	for _, s := range all {
		if s.AtLeast(min) {
			out = append(out, s)
		}
	}
	return out
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAssessment(row rowScanner) (*models.Assessment, error) {
	var a models.Assessment
	var landlord string
	var summary []byte

	if err := row.Scan(&a.ID, &a.CaseRef, &a.PracticeArea, &landlord, &a.PackFound, &summary, &a.CreatedAt); err != nil {
		return nil, err
	}
	a.LandlordType = models.LandlordType(landlord)
	if err := json.Unmarshal(summary, &a.Summary); err != nil {
		return nil, fmt.Errorf("error decoding summary: %w", err)
	}
	return &a, nil
}
