package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/viken/timetracker/internal/api/middleware"
	"github.com/viken/timetracker/internal/core/domain"
	"github.com/viken/timetracker/internal/core/service"
	"github.com/viken/timetracker/internal/infrastructure/db/memory"
)

func employeeIdentity() *domain.Identity {
	return &domain.Identity{ID: "2", Name: "Ahmed Alnasser", Email: "employee@viken.com", Role: domain.RoleEmployee, Approved: true}
}

func newTrackingHandler(t *testing.T) (*TrackingHandler, *memory.ProjectRepository) {
	t.Helper()
	projects := memory.NewProjectRepository()
	entries := service.NewTimeEntryService(memory.NewTimeEntryRepository(), projects, zerolog.Nop())
	return NewTrackingHandler(entries, service.NewProjectService(projects, zerolog.Nop())), projects
}

func TestTrackingHandler_LogEntry(t *testing.T) {
	h, projects := newTrackingHandler(t)
	project, err := projects.Create(context.Background(), &domain.Project{Name: "Villa Saada", Status: domain.ProjectActive})
	if err != nil {
		t.Fatalf("seed project: %v", err)
	}

	body := `{"project_id":"` + project.ID + `","date":"2024-06-01","check_in":"08:00","check_out":"15:30","notes":"first floor"}`
	c, rec := newJSONContext(t, http.MethodPost, "/time-entries", body)
	c.Set(middleware.IdentityKey, employeeIdentity())

	if err := h.LogEntry(c); err != nil {
		t.Fatalf("LogEntry returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var entry domain.TimeEntry
	if err := json.Unmarshal(rec.Body.Bytes(), &entry); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if entry.EmployeeID != "2" {
		t.Fatalf("entry must be attributed to the viewer, got %s", entry.EmployeeID)
	}
	if entry.TotalHours != 7.5 {
		t.Fatalf("expected 7.5 hours, got %v", entry.TotalHours)
	}
}

func TestTrackingHandler_LogEntry_BadClockTime(t *testing.T) {
	h, projects := newTrackingHandler(t)
	project, err := projects.Create(context.Background(), &domain.Project{Name: "Villa Saada", Status: domain.ProjectActive})
	if err != nil {
		t.Fatalf("seed project: %v", err)
	}

	body := `{"project_id":"` + project.ID + `","date":"2024-06-01","check_in":"8am","check_out":"15:30"}`
	c, rec := newJSONContext(t, http.MethodPost, "/time-entries", body)
	c.Set(middleware.IdentityKey, employeeIdentity())

	if err := h.LogEntry(c); err != nil {
		t.Fatalf("LogEntry returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTrackingHandler_LogEntry_InvertedRange(t *testing.T) {
	h, projects := newTrackingHandler(t)
	project, err := projects.Create(context.Background(), &domain.Project{Name: "Villa Saada", Status: domain.ProjectActive})
	if err != nil {
		t.Fatalf("seed project: %v", err)
	}

	body := `{"project_id":"` + project.ID + `","date":"2024-06-01","check_in":"16:00","check_out":"08:00"}`
	c, _ := newJSONContext(t, http.MethodPost, "/time-entries", body)
	c.Set(middleware.IdentityKey, employeeIdentity())

	if err := h.LogEntry(c); !errors.Is(err, domain.ErrInvalidTimeRange) {
		t.Fatalf("expected ErrInvalidTimeRange, got %v", err)
	}
}

func TestTrackingHandler_LogEntry_NoIdentity(t *testing.T) {
	h, _ := newTrackingHandler(t)

	c, _ := newJSONContext(t, http.MethodPost, "/time-entries", `{}`)
	err := h.LogEntry(c)

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a guard identity, got %v", err)
	}
}

func TestTrackingHandler_Dashboard(t *testing.T) {
	h, projects := newTrackingHandler(t)
	project, err := projects.Create(context.Background(), &domain.Project{Name: "Villa Saada", Status: domain.ProjectActive})
	if err != nil {
		t.Fatalf("seed project: %v", err)
	}

	for _, interval := range [][2]string{{"08:00", "12:00"}, {"13:00", "17:00"}} {
		body := `{"project_id":"` + project.ID + `","date":"2024-06-01","check_in":"` + interval[0] + `","check_out":"` + interval[1] + `"}`
		c, _ := newJSONContext(t, http.MethodPost, "/time-entries", body)
		c.Set(middleware.IdentityKey, employeeIdentity())
		if err := h.LogEntry(c); err != nil {
			t.Fatalf("LogEntry returned error: %v", err)
		}
	}

	c, rec := newJSONContext(t, http.MethodGet, "/dashboard", "")
	c.Set(middleware.IdentityKey, employeeIdentity())
	if err := h.Dashboard(c); err != nil {
		t.Fatalf("Dashboard returned error: %v", err)
	}

	var resp struct {
		Entries    []domain.TimeEntry `json:"entries"`
		TotalHours float64            `json:"total_hours"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(resp.Entries))
	}
	if resp.TotalHours != 8 {
		t.Fatalf("expected 8 total hours, got %v", resp.TotalHours)
	}
}

func TestTrackingHandler_TimeTrackingForm(t *testing.T) {
	h, projects := newTrackingHandler(t)
	for _, p := range []domain.Project{
		{Name: "Villa Saada", Status: domain.ProjectActive},
		{Name: "Oasis Hotel", Status: domain.ProjectCompleted},
	} {
		if _, err := projects.Create(context.Background(), &p); err != nil {
			t.Fatalf("seed project: %v", err)
		}
	}

	c, rec := newJSONContext(t, http.MethodGet, "/time-tracking", "")
	if err := h.TimeTrackingForm(c); err != nil {
		t.Fatalf("TimeTrackingForm returned error: %v", err)
	}

	var resp struct {
		Projects []domain.Project `json:"projects"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Projects) != 1 || resp.Projects[0].Name != "Villa Saada" {
		t.Fatalf("form must list active projects only, got %+v", resp.Projects)
	}
}
