package repository

import (
	"context"
	"errors"
	"time"

	"github.com/casewell/go-housing-hazards/internal/models"
)

// ErrNotFound is returned when an assessment ID is unknown.
var ErrNotFound = errors.New("assessment not found")

type Filter struct {
	Limit        int
	Offset       int
	Since        *time.Time
	MinOverall   *models.Severity // >= this level in the severity order
	UrgentOnly   *bool
	LandlordType *models.LandlordType
	CaseRef      *string
}

type AssessmentRepository interface {
	Add(ctx context.Context, a *models.Assessment) error
	GetByID(ctx context.Context, id string) (*models.Assessment, error)
	List(ctx context.Context, opts Filter) ([]models.Assessment, error)
}
