package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/timeledger/project-billing-api/internal/projects/domain"
)

// MemoryRepository keeps projects in process memory. It honours the same
// contract as ProjectRepository and is meant for tests and local runs.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]domain.Project
	seq   map[string]uint64
	next  uint64
	now   func() time.Time
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		items: make(map[string]domain.Project),
		seq:   make(map[string]uint64),
		now:   time.Now,
	}
}

// WithClock overrides the created_at source.
func (r *MemoryRepository) WithClock(now func() time.Time) *MemoryRepository {
	r.now = now
	return r
}

func (r *MemoryRepository) Insert(_ context.Context, p domain.NewProject) (*domain.Project, error) {
	start, err := time.Parse(domain.TimestampLayout, p.StartTime)
	if err != nil {
		return nil, fmt.Errorf("failed to insert project: invalid start_time: %w", err)
	}
	end, err := time.Parse(domain.TimestampLayout, p.EndTime)
	if err != nil {
		return nil, fmt.Errorf("failed to insert project: invalid end_time: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec := domain.Project{
		ID:              uuid.New().String(),
		ProjectName:     p.ProjectName,
		TaskOwner:       p.TaskOwner,
		ProjectType:     p.ProjectType,
		StartTime:       start,
		EndTime:         end,
		HourlyRate:      p.HourlyRate,
		CreatedAt:       r.now(),
		DurationMinutes: p.DurationMinutes,
		TotalValue:      p.TotalValue,
	}
	r.items[rec.ID] = rec
	r.seq[rec.ID] = r.next
	r.next++

	return &rec, nil
}

func (r *MemoryRepository) List(_ context.Context) ([]domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Project, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, p)
	}

	desc := domain.ListOrdering().Descending
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			if desc {
				return a.CreatedAt.After(b.CreatedAt)
			}
			return a.CreatedAt.Before(b.CreatedAt)
		}
		// ties: later inserts first, so the order is stable across calls
		return r.seq[a.ID] > r.seq[b.ID]
	})
	return out, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	delete(r.seq, id)
	return nil
}
