package ports

import (
	"context"

	"github.com/viken/timetracker/internal/core/domain"
)

// LogTimeEntryInput carries one check-in/check-out interval to record.
type LogTimeEntryInput struct {
	ProjectID  string
	EmployeeID string
	Date       string
	CheckIn    string
	CheckOut   string
	Notes      string
	PhotoURL   string
}

// TimeEntryService defines use-case operations for time tracking.
type TimeEntryService interface {
	// Log validates the interval against the project and records it with
	// the derived total hours.
	Log(ctx context.Context, input LogTimeEntryInput) (*domain.TimeEntry, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]domain.TimeEntry, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.TimeEntry, error)
}
