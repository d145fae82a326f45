package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/viken/timetracker/internal/api/metrics"
	"github.com/viken/timetracker/internal/core/ports"
	"github.com/viken/timetracker/internal/core/service"
)

// AdminHandler serves the admin-only views: project management, employee
// approval, and aggregate reports.
type AdminHandler struct {
	projects  ports.ProjectService
	entries   ports.TimeEntryService
	employees ports.EmployeeService
	reports   ports.ReportService
}

func NewAdminHandler(
	projects ports.ProjectService,
	entries ports.TimeEntryService,
	employees ports.EmployeeService,
	reports ports.ReportService,
) *AdminHandler {
	return &AdminHandler{
		projects:  projects,
		entries:   entries,
		employees: employees,
		reports:   reports,
	}
}

// Overview returns all projects and the pending registrations.
func (h *AdminHandler) Overview(c echo.Context) error {
	ctx := c.Request().Context()

	projects, err := h.projects.List(ctx)
	if err != nil {
		return err
	}
	pending, err := h.employees.ListPending(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, adminOverviewResponse{
		Projects:         projects,
		PendingEmployees: pending,
	})
}

// CreateProject registers a new construction project.
//
// @Summary      Create a project
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      createProjectRequest  true  "Project details"
// @Success      201   {object}  domain.Project
// @Failure      400   {object}  errorResponse
// @Router       /admin/projects [post]
func (h *AdminHandler) CreateProject(c echo.Context) error {
	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	project, err := h.projects.Create(c.Request().Context(), ports.CreateProjectInput{
		Name:        req.Name,
		Address:     req.Address,
		Image:       req.Image,
		Status:      req.Status,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, project)
}

// ProjectDetails returns one project with its time entries and total hours.
func (h *AdminHandler) ProjectDetails(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	project, err := h.projects.Get(ctx, id)
	if err != nil {
		return err
	}
	entries, err := h.entries.ListByProject(ctx, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, projectDetailsResponse{
		Project:    project,
		Entries:    entries,
		TotalHours: service.TotalHours(entries),
	})
}

// Reports returns the aggregate hour reports behind the admin charts.
func (h *AdminHandler) Reports(c echo.Context) error {
	ctx := c.Request().Context()

	byProject, err := h.reports.HoursByProject(ctx)
	if err != nil {
		return err
	}
	byEmployee, err := h.reports.HoursByEmployee(ctx)
	if err != nil {
		return err
	}
	distribution, err := h.reports.ProjectDistribution(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toReportsResponse(byProject, byEmployee, distribution))
}

// ApproveEmployee marks a pending registration as approved.
func (h *AdminHandler) ApproveEmployee(c echo.Context) error {
	employee, err := h.employees.Approve(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	metrics.ApprovalsTotal.WithLabelValues("approved").Inc()
	return c.JSON(http.StatusOK, employee)
}

// RejectEmployee removes a pending registration.
func (h *AdminHandler) RejectEmployee(c echo.Context) error {
	if err := h.employees.Reject(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.ApprovalsTotal.WithLabelValues("rejected").Inc()
	return c.NoContent(http.StatusNoContent)
}
