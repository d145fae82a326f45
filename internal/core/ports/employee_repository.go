package ports

import (
	"context"

	"github.com/viken/timetracker/internal/core/domain"
)

// EmployeeRepository defines the interface for the employee directory.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
	FindByID(ctx context.Context, id string) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	Update(ctx context.Context, employee *domain.Employee) error
	Delete(ctx context.Context, id string) error
}
