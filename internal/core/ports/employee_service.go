package ports

import (
	"context"

	"github.com/viken/timetracker/internal/core/domain"
)

// EmployeeService defines admin operations over the employee directory.
type EmployeeService interface {
	List(ctx context.Context) ([]domain.Employee, error)
	// ListPending returns employees still waiting for admin approval.
	ListPending(ctx context.Context) ([]domain.Employee, error)
	Approve(ctx context.Context, id string) (*domain.Employee, error)
	Reject(ctx context.Context, id string) error
}
