package domain

import "errors"

// ProjectStatus represents the lifecycle state of a construction project.
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectPaused    ProjectStatus = "paused"
)

var ErrProjectNotFound = errors.New("project not found")
var ErrProjectInactive = errors.New("project is not active")

// IsValid reports whether s is a known project status.
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectActive, ProjectCompleted, ProjectPaused:
		return true
	}
	return false
}

// Project is a construction site that employees log time against.
// Dates use the civil layout "2006-01-02"; EndDate is empty while the
// project is ongoing.
type Project struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Address     string        `json:"address"`
	Image       string        `json:"image,omitempty"`
	Status      ProjectStatus `json:"status"`
	StartDate   string        `json:"start_date"`
	EndDate     string        `json:"end_date,omitempty"`
	Description string        `json:"description,omitempty"`
}
