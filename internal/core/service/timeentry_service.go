package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/viken/timetracker/internal/core/domain"
	"github.com/viken/timetracker/internal/core/ports"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

type TimeEntryService struct {
	entries  ports.TimeEntryRepository
	projects ports.ProjectRepository
	logger   zerolog.Logger
}

func NewTimeEntryService(entries ports.TimeEntryRepository, projects ports.ProjectRepository, logger zerolog.Logger) *TimeEntryService {
	return &TimeEntryService{entries: entries, projects: projects, logger: logger}
}

// Log records one work interval. The project must exist and be active, and
// check-out must fall after check-in on the same day.
func (s *TimeEntryService) Log(ctx context.Context, input ports.LogTimeEntryInput) (*domain.TimeEntry, error) {
	project, err := s.projects.FindByID(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}
	if project.Status != domain.ProjectActive {
		return nil, domain.ErrProjectInactive
	}

	if _, err := time.Parse(dateLayout, input.Date); err != nil {
		return nil, domain.ErrInvalidDate
	}

	hours, err := intervalHours(input.CheckIn, input.CheckOut)
	if err != nil {
		return nil, err
	}

	entry := &domain.TimeEntry{
		ProjectID:  input.ProjectID,
		EmployeeID: input.EmployeeID,
		Date:       input.Date,
		CheckIn:    input.CheckIn,
		CheckOut:   input.CheckOut,
		Notes:      input.Notes,
		PhotoURL:   input.PhotoURL,
		TotalHours: hours,
	}

	created, err := s.entries.Create(ctx, entry)
	if err != nil {
		s.logger.Error().Err(err).Str("project_id", input.ProjectID).Msg("failed to record time entry")
		return nil, err
	}

	s.logger.Info().
		Str("project_id", created.ProjectID).
		Str("employee_id", created.EmployeeID).
		Float64("hours", created.TotalHours).
		Msg("time entry logged")

	return created, nil
}

func (s *TimeEntryService) ListByEmployee(ctx context.Context, employeeID string) ([]domain.TimeEntry, error) {
	return s.entries.ListByEmployee(ctx, employeeID)
}

func (s *TimeEntryService) ListByProject(ctx context.Context, projectID string) ([]domain.TimeEntry, error) {
	return s.entries.ListByProject(ctx, projectID)
}

// intervalHours derives the logged hours from the two wall-clock stamps.
func intervalHours(checkIn, checkOut string) (float64, error) {
	in, err := time.Parse(clockLayout, checkIn)
	if err != nil {
		return 0, domain.ErrInvalidTimeRange
	}
	out, err := time.Parse(clockLayout, checkOut)
	if err != nil {
		return 0, domain.ErrInvalidTimeRange
	}
	d := out.Sub(in)
	if d <= 0 {
		return 0, domain.ErrInvalidTimeRange
	}
	return d.Hours(), nil
}

// TotalHours sums the hours of a set of entries.
func TotalHours(entries []domain.TimeEntry) float64 {
	var total float64
	for _, e := range entries {
		total += e.TotalHours
	}
	return total
}
