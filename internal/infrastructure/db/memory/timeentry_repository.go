package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/viken/timetracker/internal/core/domain"
)

type TimeEntryRepository struct {
	mu      sync.RWMutex
	entries []domain.TimeEntry
}

func NewTimeEntryRepository() *TimeEntryRepository {
	return &TimeEntryRepository{}
}

func (r *TimeEntryRepository) Create(_ context.Context, entry *domain.TimeEntry) (*domain.TimeEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *entry
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	r.entries = append(r.entries, stored)

	clone := stored
	return &clone, nil
}

func (r *TimeEntryRepository) ListByEmployee(_ context.Context, employeeID string) ([]domain.TimeEntry, error) {
	return r.filter(func(e domain.TimeEntry) bool { return e.EmployeeID == employeeID }), nil
}

func (r *TimeEntryRepository) ListByProject(_ context.Context, projectID string) ([]domain.TimeEntry, error) {
	return r.filter(func(e domain.TimeEntry) bool { return e.ProjectID == projectID }), nil
}

func (r *TimeEntryRepository) List(_ context.Context) ([]domain.TimeEntry, error) {
	return r.filter(func(domain.TimeEntry) bool { return true }), nil
}

func (r *TimeEntryRepository) filter(keep func(domain.TimeEntry) bool) []domain.TimeEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.TimeEntry, 0)
	for _, e := range r.entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}
