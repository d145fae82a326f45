package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/viken/timetracker/internal/core/domain"
	"github.com/viken/timetracker/internal/core/ports"
	"github.com/viken/timetracker/internal/infrastructure/db/memory"
)

func TestProjectService_Create_DefaultsToActive(t *testing.T) {
	svc := NewProjectService(memory.NewProjectRepository(), zerolog.Nop())

	project, err := svc.Create(context.Background(), ports.CreateProjectInput{
		Name:      "Oasis Hotel",
		Address:   "Prince Sultan Street, Khobar",
		Status:    "not-a-status",
		StartDate: "2024-03-01",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if project.Status != domain.ProjectActive {
		t.Fatalf("expected active default, got %s", project.Status)
	}
	if project.ID == "" {
		t.Fatalf("expected a generated project id")
	}
}

func TestProjectService_ListActive(t *testing.T) {
	repo := memory.NewProjectRepository()
	svc := NewProjectService(repo, zerolog.Nop())

	for _, status := range []string{"active", "paused", "completed", "active"} {
		if _, err := svc.Create(context.Background(), ports.CreateProjectInput{
			Name:      "Site " + status,
			Address:   "somewhere",
			Status:    status,
			StartDate: "2024-01-01",
		}); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	active, err := svc.ListActive(context.Background())
	if err != nil {
		t.Fatalf("ListActive returned error: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("expected 2 active projects, got %d", len(active))
	}
	for _, p := range active {
		if p.Status != domain.ProjectActive {
			t.Fatalf("ListActive leaked status %s", p.Status)
		}
	}
}

func TestProjectService_Get_Unknown(t *testing.T) {
	svc := NewProjectService(memory.NewProjectRepository(), zerolog.Nop())

	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}
