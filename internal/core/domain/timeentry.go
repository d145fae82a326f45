package domain

import "errors"

var ErrEmployeeNotFound = errors.New("employee not found")
var ErrInvalidTimeRange = errors.New("check-out must be after check-in")
var ErrInvalidDate = errors.New("invalid entry date")

// Employee is a directory record. It carries the same principal fields as
// Identity plus profile data shown on the admin dashboard.
type Employee struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Approved bool   `json:"approved"`
	Title    string `json:"title,omitempty"`
	JoinDate string `json:"join_date"`
	Avatar   string `json:"avatar,omitempty"`
}

// TimeEntry is one logged work interval on a project. CheckIn and CheckOut
// are wall-clock times in the layout "15:04"; Date uses "2006-01-02".
// TotalHours is derived from the clock times when the entry is logged.
type TimeEntry struct {
	ID         string  `json:"id"`
	ProjectID  string  `json:"project_id"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	CheckIn    string  `json:"check_in"`
	CheckOut   string  `json:"check_out"`
	Notes      string  `json:"notes,omitempty"`
	PhotoURL   string  `json:"photo_url,omitempty"`
	TotalHours float64 `json:"total_hours"`
}
