package handler

import (
	"github.com/viken/timetracker/internal/core/domain"
	"github.com/viken/timetracker/internal/core/ports"
)

type createProjectRequest struct {
	Name        string `json:"name"        validate:"required"`
	Address     string `json:"address"     validate:"required"`
	Image       string `json:"image"`
	Status      string `json:"status"      validate:"omitempty,oneof=active completed paused"`
	StartDate   string `json:"start_date"  validate:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date"    validate:"omitempty,datetime=2006-01-02"`
	Description string `json:"description"`
}

// adminOverviewResponse backs the admin dashboard: all projects plus the
// registrations waiting for approval.
type adminOverviewResponse struct {
	Projects         []domain.Project  `json:"projects"`
	PendingEmployees []domain.Employee `json:"pending_employees"`
}

type projectDetailsResponse struct {
	Project    *domain.Project    `json:"project"`
	Entries    []domain.TimeEntry `json:"entries"`
	TotalHours float64            `json:"total_hours"`
}

type projectHoursResponse struct {
	ProjectID   string  `json:"project_id"`
	ProjectName string  `json:"project_name"`
	Hours       float64 `json:"hours"`
}

type employeeHoursResponse struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Hours        float64 `json:"hours"`
}

type projectShareResponse struct {
	ProjectID   string  `json:"project_id"`
	ProjectName string  `json:"project_name"`
	Hours       float64 `json:"hours"`
	Share       float64 `json:"share"`
}

type reportsResponse struct {
	ByProject    []projectHoursResponse  `json:"by_project"`
	ByEmployee   []employeeHoursResponse `json:"by_employee"`
	Distribution []projectShareResponse  `json:"distribution"`
}

func toReportsResponse(
	byProject []ports.ProjectHours,
	byEmployee []ports.EmployeeHours,
	distribution []ports.ProjectShare,
) reportsResponse {
	resp := reportsResponse{
		ByProject:    make([]projectHoursResponse, 0, len(byProject)),
		ByEmployee:   make([]employeeHoursResponse, 0, len(byEmployee)),
		Distribution: make([]projectShareResponse, 0, len(distribution)),
	}
	for _, row := range byProject {
		resp.ByProject = append(resp.ByProject, projectHoursResponse(row))
	}
	for _, row := range byEmployee {
		resp.ByEmployee = append(resp.ByEmployee, employeeHoursResponse(row))
	}
	for _, row := range distribution {
		resp.Distribution = append(resp.Distribution, projectShareResponse(row))
	}
	return resp
}
