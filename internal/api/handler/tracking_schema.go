package handler

import "github.com/viken/timetracker/internal/core/domain"

type logTimeEntryRequest struct {
	ProjectID string `json:"project_id" validate:"required"`
	Date      string `json:"date"       validate:"required,datetime=2006-01-02"`
	CheckIn   string `json:"check_in"   validate:"required,datetime=15:04"`
	CheckOut  string `json:"check_out"  validate:"required,datetime=15:04"`
	Notes     string `json:"notes"`
	PhotoURL  string `json:"photo_url"`
}

// dashboardResponse backs the employee dashboard view: the viewer's own
// entries and their running total.
type dashboardResponse struct {
	User       *domain.Identity   `json:"user"`
	Entries    []domain.TimeEntry `json:"entries"`
	TotalHours float64            `json:"total_hours"`
}

// timeTrackingFormResponse backs the check-in form: only active projects
// accept new entries.
type timeTrackingFormResponse struct {
	Projects []domain.Project `json:"projects"`
}
