package repository

import (
	"context"

	"github.com/timeledger/project-billing-api/internal/projects/domain"
)

// Store persists project records. Implementations return domain.ErrNotFound
// (possibly wrapped) when an id has no record.
type Store interface {
	Insert(ctx context.Context, p domain.NewProject) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}

var (
	_ Store = (*ProjectRepository)(nil)
	_ Store = (*MemoryRepository)(nil)
)
