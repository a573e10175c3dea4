package assess

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/casewell/go-housing-hazards/internal/engine"
	"github.com/casewell/go-housing-hazards/internal/models"
	"github.com/casewell/go-housing-hazards/internal/notify"
	"github.com/casewell/go-housing-hazards/internal/packs"
	"github.com/casewell/go-housing-hazards/internal/repository"
	"github.com/casewell/go-housing-hazards/internal/worker"
)

// Request is one case submitted for assessment.
type Request struct {
	CaseRef      string             `json:"caseRef"`
	PracticeArea string             `json:"practiceArea"`
	Input        models.HazardInput `json:"input"`
}

// Service binds the pack registry, the engine, persistence and the
// broadcaster. Requests can be assessed synchronously (the API path) or
// queued through the worker pool.
type Service struct {
	registry    *packs.Registry
	repo        repository.AssessmentRepository
	broadcaster *notify.Broadcaster
	pool        *worker.Pool[Request]
	now         func() time.Time
}

func NewService(registry *packs.Registry, repo repository.AssessmentRepository, broadcaster *notify.Broadcaster) *Service {
	return &Service{
		registry:    registry,
		repo:        repo,
		broadcaster: broadcaster,
		now:         time.Now,
	}
}

// WithClock overrides the evaluation clock. Tests use this to pin deadline
// math to a fixed date.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Assess evaluates one request, persists the result and broadcasts it when
// urgent. An unregistered practice area yields the empty summary, not an
// error.
func (s *Service) Assess(ctx context.Context, req Request) (*models.Assessment, error) {
	now := s.now()

	a := &models.Assessment{
		ID:           uuid.NewString(),
		CaseRef:      req.CaseRef,
		PracticeArea: req.PracticeArea,
		LandlordType: req.Input.LandlordType,
		CreatedAt:    now,
	}

	pack, ok := s.registry.Get(req.PracticeArea)
	if !ok {
		slog.Warn("no indicator pack registered, returning empty summary",
			"practice_area", req.PracticeArea, "case_ref", req.CaseRef)
		a.Summary = engine.EmptySummary()
	} else {
		a.PackFound = true
		a.Summary = engine.Evaluate(req.Input, pack, now)
	}

	if err := s.repo.Add(ctx, a); err != nil {
		return nil, fmt.Errorf("storing assessment: %w", err)
	}

	if s.broadcaster != nil && a.Summary.UrgentAction {
		s.broadcaster.Broadcast(a)
	}

	slog.Info("assessed case",
		"id", a.ID,
		"case_ref", a.CaseRef,
		"overall", a.Summary.OverallRiskLevel,
		"urgent", a.Summary.UrgentAction)
	return a, nil
}

// Start launches the worker pool for queued submissions.
func (s *Service) Start(ctx context.Context, numWorkers, bufferSize int) {
	s.pool = worker.NewPool(numWorkers, bufferSize, func(ctx context.Context, req Request) error {
		_, err := s.Assess(ctx, req)
		return err
	})
	s.pool.Start(ctx)
}

// Submit queues a request for background assessment. Start must have been
// called first.
func (s *Service) Submit(req Request) {
	s.pool.Submit(req)
}

func (s *Service) Stop() {
	if s.pool != nil {
		s.pool.Stop()
	}
}
