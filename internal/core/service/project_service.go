package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/viken/timetracker/internal/core/domain"
	"github.com/viken/timetracker/internal/core/ports"
)

type ProjectService struct {
	repo   ports.ProjectRepository
	logger zerolog.Logger
}

func NewProjectService(repo ports.ProjectRepository, logger zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, logger: logger}
}

// Create registers a new construction project. An unknown status defaults
// to active, matching the dashboard's new-project form.
func (s *ProjectService) Create(ctx context.Context, input ports.CreateProjectInput) (*domain.Project, error) {
	status := domain.ProjectStatus(input.Status)
	if !status.IsValid() {
		status = domain.ProjectActive
	}

	project := &domain.Project{
		Name:        input.Name,
		Address:     input.Address,
		Image:       input.Image,
		Status:      status,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Description: input.Description,
	}

	created, err := s.repo.Create(ctx, project)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create project")
		return nil, err
	}

	s.logger.Info().Str("project_id", created.ID).Str("name", created.Name).Msg("project created")
	return created, nil
}

func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.repo.List(ctx)
}

// ListActive returns the projects an employee may currently log time against.
func (s *ProjectService) ListActive(ctx context.Context) ([]domain.Project, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]domain.Project, 0, len(projects))
	for _, p := range projects {
		if p.Status == domain.ProjectActive {
			active = append(active, p)
		}
	}
	return active, nil
}

func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.repo.FindByID(ctx, id)
}
