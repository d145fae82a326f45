package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/viken/timetracker/internal/api/metrics"
	"github.com/viken/timetracker/internal/core/ports"
	"github.com/viken/timetracker/internal/core/service"
)

// TrackingHandler serves the employee-facing views: the dashboard and the
// time-tracking form.
type TrackingHandler struct {
	entries  ports.TimeEntryService
	projects ports.ProjectService
}

func NewTrackingHandler(entries ports.TimeEntryService, projects ports.ProjectService) *TrackingHandler {
	return &TrackingHandler{entries: entries, projects: projects}
}

// Dashboard returns the viewer's time entries and total logged hours.
func (h *TrackingHandler) Dashboard(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	entries, err := h.entries.ListByEmployee(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dashboardResponse{
		User:       identity,
		Entries:    entries,
		TotalHours: service.TotalHours(entries),
	})
}

// TimeTrackingForm returns the projects currently accepting entries.
func (h *TrackingHandler) TimeTrackingForm(c echo.Context) error {
	projects, err := h.projects.ListActive(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, timeTrackingFormResponse{Projects: projects})
}

// LogEntry records a check-in/check-out interval for the viewer.
//
// @Summary      Log a time entry
// @Tags         tracking
// @Accept       json
// @Produce      json
// @Param        body  body      logTimeEntryRequest  true  "Work interval"
// @Success      201   {object}  domain.TimeEntry
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /time-entries [post]
func (h *TrackingHandler) LogEntry(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req logTimeEntryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	entry, err := h.entries.Log(c.Request().Context(), ports.LogTimeEntryInput{
		ProjectID:  req.ProjectID,
		EmployeeID: identity.ID,
		Date:       req.Date,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Notes:      req.Notes,
		PhotoURL:   req.PhotoURL,
	})
	if err != nil {
		return err
	}

	metrics.TimeEntriesLoggedTotal.Inc()
	return c.JSON(http.StatusCreated, entry)
}
