package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/viken/timetracker/internal/core/domain"
	"github.com/viken/timetracker/internal/infrastructure/db/memory"
)

func seedDirectory(t *testing.T) *memory.EmployeeRepository {
	t.Helper()
	repo := memory.NewEmployeeRepository()
	for _, e := range []domain.Employee{
		{ID: "1", Name: "Mohammed Ali", Email: "mohammad@viken.com", Role: domain.RoleAdmin, Approved: true},
		{ID: "2", Name: "Ahmed Alnasser", Email: "ahmed@viken.com", Role: domain.RoleEmployee, Approved: true},
		{ID: "4", Name: "Faisal Alshammari", Email: "faisal@viken.com", Role: domain.RoleEmployee, Approved: false},
	} {
		if _, err := repo.Create(context.Background(), &e); err != nil {
			t.Fatalf("seed directory: %v", err)
		}
	}
	return repo
}

func TestEmployeeService_ListPending(t *testing.T) {
	svc := NewEmployeeService(seedDirectory(t), zerolog.Nop())

	pending, err := svc.ListPending(context.Background())
	if err != nil {
		t.Fatalf("ListPending returned error: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != "4" {
		t.Fatalf("expected only employee 4 pending, got %+v", pending)
	}
}

func TestEmployeeService_Approve(t *testing.T) {
	svc := NewEmployeeService(seedDirectory(t), zerolog.Nop())

	employee, err := svc.Approve(context.Background(), "4")
	if err != nil {
		t.Fatalf("Approve returned error: %v", err)
	}
	if !employee.Approved {
		t.Fatalf("employee should be approved")
	}

	// Approving again is a no-op.
	if _, err := svc.Approve(context.Background(), "4"); err != nil {
		t.Fatalf("second Approve returned error: %v", err)
	}

	pending, err := svc.ListPending(context.Background())
	if err != nil {
		t.Fatalf("ListPending returned error: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("expected no pending employees, got %d", len(pending))
	}
}

func TestEmployeeService_Approve_Unknown(t *testing.T) {
	svc := NewEmployeeService(seedDirectory(t), zerolog.Nop())

	if _, err := svc.Approve(context.Background(), "missing"); !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestEmployeeService_Reject(t *testing.T) {
	svc := NewEmployeeService(seedDirectory(t), zerolog.Nop())

	if err := svc.Reject(context.Background(), "4"); err != nil {
		t.Fatalf("Reject returned error: %v", err)
	}
	if err := svc.Reject(context.Background(), "4"); !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound on second reject, got %v", err)
	}

	all, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 remaining employees, got %d", len(all))
	}
}
