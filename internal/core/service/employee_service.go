package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/viken/timetracker/internal/core/domain"
	"github.com/viken/timetracker/internal/core/ports"
)

type EmployeeService struct {
	repo   ports.EmployeeRepository
	logger zerolog.Logger
}

func NewEmployeeService(repo ports.EmployeeRepository, logger zerolog.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, logger: logger}
}

func (s *EmployeeService) List(ctx context.Context) ([]domain.Employee, error) {
	return s.repo.List(ctx)
}

// ListPending returns directory entries still waiting for admin sign-off.
func (s *EmployeeService) ListPending(ctx context.Context) ([]domain.Employee, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	pending := make([]domain.Employee, 0)
	for _, e := range all {
		if !e.Approved {
			pending = append(pending, e)
		}
	}
	return pending, nil
}

// Approve marks a pending employee as approved. Approving an already
// approved employee is a no-op.
func (s *EmployeeService) Approve(ctx context.Context, id string) (*domain.Employee, error) {
	employee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee.Approved {
		return employee, nil
	}

	employee.Approved = true
	if err := s.repo.Update(ctx, employee); err != nil {
		return nil, err
	}

	s.logger.Info().Str("employee_id", id).Msg("employee approved")
	return employee, nil
}

// Reject removes a pending registration from the directory.
func (s *EmployeeService) Reject(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("employee_id", id).Msg("employee registration rejected")
	return nil
}
