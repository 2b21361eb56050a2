package service

import (
	"context"
	"errors"
	"time"

	"github.com/timeledger/project-billing-api/internal/logging"
	"github.com/timeledger/project-billing-api/internal/observability"
	"github.com/timeledger/project-billing-api/internal/projects/domain"
	"github.com/timeledger/project-billing-api/internal/projects/events"
	"github.com/timeledger/project-billing-api/internal/projects/repository"
)

// ProjectService handles project-related business logic. Every error it
// returns is a *domain.Error.
type ProjectService struct {
	store     repository.Store
	publisher events.Publisher
	metrics   *observability.Metrics
}

// NewProjectService creates a new project service. A nil store is allowed:
// every operation then fails with a store error instead of panicking.
func NewProjectService(store repository.Store, publisher events.Publisher, metrics *observability.Metrics) *ProjectService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &ProjectService{
		store:     store,
		publisher: publisher,
		metrics:   metrics,
	}
}

// Create validates req, derives its billing figures and stores it.
// Validation failures never reach the store.
func (s *ProjectService) Create(ctx context.Context, req domain.CreateProjectRequest) (*domain.Project, error) {
	if violations := domain.Validate(req); len(violations) > 0 {
		return nil, domain.NewValidationError(violations)
	}

	// Validate covers the interval and rate rules; Prepare can still refuse
	// a total_value that does not fit in a float64.
	rec, err := domain.Prepare(req)
	if err != nil {
		return nil, domain.NewValidationError([]domain.Violation{domain.PrepareViolation(err)})
	}

	if s.store == nil {
		return nil, s.unavailable(ctx, "create")
	}

	start := time.Now()
	p, err := s.store.Insert(ctx, rec)
	s.observe("insert", start, err)
	if err != nil {
		logging.FromContext(ctx).WithError(err).WithField("operation", "create").Error("insert failed")
		return nil, domain.StoreError(err)
	}

	s.metrics.RecordProjectCreated(p.DurationMinutes, p.TotalValue)
	s.publish(ctx, events.Event{Type: events.TypeCreated, ProjectID: p.ID, Project: p})

	return p, nil
}

// List returns every project, newest first.
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	if s.store == nil {
		return nil, s.unavailable(ctx, "list")
	}

	start := time.Now()
	items, err := s.store.List(ctx)
	s.observe("list", start, err)
	if err != nil {
		logging.FromContext(ctx).WithError(err).WithField("operation", "list").Error("list failed")
		return nil, domain.StoreError(err)
	}
	if items == nil {
		items = []domain.Project{}
	}
	return items, nil
}

// Get returns one project by id.
func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	if s.store == nil {
		return nil, s.unavailable(ctx, "get")
	}

	start := time.Now()
	p, err := s.store.GetByID(ctx, id)
	s.observe("get", start, err)
	if err != nil {
		return nil, s.classify(ctx, "get", err)
	}
	return p, nil
}

// Delete removes one project by id.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if s.store == nil {
		return s.unavailable(ctx, "delete")
	}

	start := time.Now()
	err := s.store.Delete(ctx, id)
	s.observe("delete", start, err)
	if err != nil {
		return s.classify(ctx, "delete", err)
	}

	s.publish(ctx, events.Event{Type: events.TypeDeleted, ProjectID: id})
	return nil
}

// classify keeps not-found as is and turns anything else into a store error.
func (s *ProjectService) classify(ctx context.Context, operation string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NotFound()
	}
	logging.FromContext(ctx).WithError(err).WithField("operation", operation).Error("store call failed")
	return domain.StoreError(err)
}

func (s *ProjectService) unavailable(ctx context.Context, operation string) error {
	logging.FromContext(ctx).WithField("operation", operation).Warn("store is not configured")
	return domain.StoreError(domain.ErrStoreUnavailable)
}

func (s *ProjectService) observe(operation string, start time.Time, err error) {
	outcome := "ok"
	switch {
	case errors.Is(err, domain.ErrNotFound):
		outcome = "not_found"
	case err != nil:
		outcome = "error"
	}
	s.metrics.RecordStoreOperation(operation, outcome, time.Since(start))
}

// publish never fails the caller: the store call has already succeeded.
func (s *ProjectService) publish(ctx context.Context, ev events.Event) {
	if err := s.publisher.Publish(ctx, ev); err != nil {
		logging.FromContext(ctx).WithError(err).WithField("event", ev.Type).Warn("event publish failed")
	}
}
