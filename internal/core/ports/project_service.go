package ports

import (
	"context"

	"github.com/viken/timetracker/internal/core/domain"
)

// CreateProjectInput carries all data needed to create a new project.
type CreateProjectInput struct {
	Name        string
	Address     string
	Image       string
	Status      string
	StartDate   string
	EndDate     string
	Description string
}

// ProjectService defines use-case operations for projects.
type ProjectService interface {
	Create(ctx context.Context, input CreateProjectInput) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	// ListActive returns the projects currently accepting time entries.
	ListActive(ctx context.Context) ([]domain.Project, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
}
