package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/viken/timetracker/internal/core/domain"
)

type EmployeeRepository struct {
	mu        sync.RWMutex
	order     []string
	employees map[string]domain.Employee
}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{employees: make(map[string]domain.Employee)}
}

func (r *EmployeeRepository) Create(_ context.Context, employee *domain.Employee) (*domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *employee
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	if _, exists := r.employees[stored.ID]; !exists {
		r.order = append(r.order, stored.ID)
	}
	r.employees[stored.ID] = stored

	clone := stored
	return &clone, nil
}

func (r *EmployeeRepository) FindByID(_ context.Context, id string) (*domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	employee, ok := r.employees[id]
	if !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	clone := employee
	return &clone, nil
}

// List returns employees in insertion order.
func (r *EmployeeRepository) List(_ context.Context) ([]domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Employee, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.employees[id])
	}
	return out, nil
}

func (r *EmployeeRepository) Update(_ context.Context, employee *domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.employees[employee.ID]; !ok {
		return domain.ErrEmployeeNotFound
	}
	r.employees[employee.ID] = *employee
	return nil
}

func (r *EmployeeRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.employees[id]; !ok {
		return domain.ErrEmployeeNotFound
	}
	delete(r.employees, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
