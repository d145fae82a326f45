// Package memory provides mutex-guarded in-memory repositories. The
// dashboard's data set is seeded at startup and not persisted across runs;
// only the session record has a durable backend.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/viken/timetracker/internal/core/domain"
)

type ProjectRepository struct {
	mu       sync.RWMutex
	order    []string
	projects map[string]domain.Project
}

func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{projects: make(map[string]domain.Project)}
}

func (r *ProjectRepository) Create(_ context.Context, project *domain.Project) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *project
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	if _, exists := r.projects[stored.ID]; !exists {
		r.order = append(r.order, stored.ID)
	}
	r.projects[stored.ID] = stored

	clone := stored
	return &clone, nil
}

func (r *ProjectRepository) FindByID(_ context.Context, id string) (*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	project, ok := r.projects[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	clone := project
	return &clone, nil
}

// List returns projects in insertion order.
func (r *ProjectRepository) List(_ context.Context) ([]domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Project, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.projects[id])
	}
	return out, nil
}
