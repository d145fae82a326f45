package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/viken/timetracker/internal/core/ports"
)

// ReportService aggregates logged hours for the admin reports page. Rows
// follow the ordering of the underlying project and employee listings so
// charts render deterministically; zero-hour rows are kept.
type ReportService struct {
	entries   ports.TimeEntryRepository
	projects  ports.ProjectRepository
	employees ports.EmployeeRepository
	logger    zerolog.Logger
}

func NewReportService(
	entries ports.TimeEntryRepository,
	projects ports.ProjectRepository,
	employees ports.EmployeeRepository,
	logger zerolog.Logger,
) *ReportService {
	return &ReportService{
		entries:   entries,
		projects:  projects,
		employees: employees,
		logger:    logger,
	}
}

func (s *ReportService) HoursByProject(ctx context.Context) ([]ports.ProjectHours, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	byProject, err := s.hoursByProjectID(ctx)
	if err != nil {
		return nil, err
	}

	report := make([]ports.ProjectHours, 0, len(projects))
	for _, p := range projects {
		report = append(report, ports.ProjectHours{
			ProjectID:   p.ID,
			ProjectName: p.Name,
			Hours:       byProject[p.ID],
		})
	}
	return report, nil
}

func (s *ReportService) HoursByEmployee(ctx context.Context) ([]ports.EmployeeHours, error) {
	employees, err := s.employees.List(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := s.entries.List(ctx)
	if err != nil {
		return nil, err
	}

	byEmployee := make(map[string]float64)
	for _, e := range entries {
		byEmployee[e.EmployeeID] += e.TotalHours
	}

	report := make([]ports.EmployeeHours, 0, len(employees))
	for _, emp := range employees {
		report = append(report, ports.EmployeeHours{
			EmployeeID:   emp.ID,
			EmployeeName: emp.Name,
			Hours:        byEmployee[emp.ID],
		})
	}
	return report, nil
}

func (s *ReportService) ProjectDistribution(ctx context.Context) ([]ports.ProjectShare, error) {
	byProject, err := s.HoursByProject(ctx)
	if err != nil {
		return nil, err
	}

	var total float64
	for _, row := range byProject {
		total += row.Hours
	}

	shares := make([]ports.ProjectShare, 0, len(byProject))
	for _, row := range byProject {
		share := 0.0
		if total > 0 {
			share = row.Hours / total
		}
		shares = append(shares, ports.ProjectShare{
			ProjectID:   row.ProjectID,
			ProjectName: row.ProjectName,
			Hours:       row.Hours,
			Share:       share,
		})
	}
	return shares, nil
}

func (s *ReportService) hoursByProjectID(ctx context.Context) (map[string]float64, error) {
	entries, err := s.entries.List(ctx)
	if err != nil {
		return nil, err
	}
	byProject := make(map[string]float64)
	for _, e := range entries {
		byProject[e.ProjectID] += e.TotalHours
	}
	return byProject, nil
}
