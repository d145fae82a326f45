package ports

import "context"

// ProjectHours is one bar in the hours-by-project report.
type ProjectHours struct {
	ProjectID   string
	ProjectName string
	Hours       float64
}

// EmployeeHours is one bar in the hours-by-employee report.
type EmployeeHours struct {
	EmployeeID   string
	EmployeeName string
	Hours        float64
}

// ProjectShare is one slice of the project distribution report.
// Share is the project's fraction of all logged hours, in [0, 1].
type ProjectShare struct {
	ProjectID   string
	ProjectName string
	Hours       float64
	Share       float64
}

// ReportService aggregates logged hours for the admin reports page.
type ReportService interface {
	HoursByProject(ctx context.Context) ([]ProjectHours, error)
	HoursByEmployee(ctx context.Context) ([]EmployeeHours, error)
	ProjectDistribution(ctx context.Context) ([]ProjectShare, error)
}
