package ports

import (
	"context"

	"github.com/viken/timetracker/internal/core/domain"
)

// TimeEntryRepository defines the interface for time entry persistence.
type TimeEntryRepository interface {
	Create(ctx context.Context, entry *domain.TimeEntry) (*domain.TimeEntry, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]domain.TimeEntry, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.TimeEntry, error)
	List(ctx context.Context) ([]domain.TimeEntry, error)
}
