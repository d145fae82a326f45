// Package fixtures seeds the in-memory repositories with the demo dataset
// the dashboard ships with: four projects, four employees (one awaiting
// approval), a handful of time entries, and the two fixed login accounts.
package fixtures

import (
	"context"

	"github.com/viken/timetracker/internal/core/domain"
	"github.com/viken/timetracker/internal/core/ports"
	"github.com/viken/timetracker/internal/core/service"
)

// Credentials returns the fixed two-row login table: one admin and one
// employee account.
func Credentials() []service.Credential {
	return []service.Credential{
		{
			Email:    "admin@viken.com",
			Password: "password",
			Identity: domain.Identity{
				ID:       "1",
				Name:     "System Administrator",
				Email:    "admin@viken.com",
				Role:     domain.RoleAdmin,
				Approved: true,
			},
		},
		{
			Email:    "employee@viken.com",
			Password: "password",
			Identity: domain.Identity{
				ID:       "2",
				Name:     "Site Employee",
				Email:    "employee@viken.com",
				Role:     domain.RoleEmployee,
				Approved: true,
			},
		},
	}
}

func Projects() []domain.Project {
	return []domain.Project{
		{
			ID:          "1",
			Name:        "Villa Saada",
			Address:     "Palm Street, Rawdah District, Riyadh",
			Image:       "https://images.unsplash.com/photo-1605810230434-7631ac76ec81?w=800&h=600&fit=crop",
			Status:      domain.ProjectActive,
			StartDate:   "2023-10-15",
			Description: "Full home renovation with new bathtub installation and bathroom upgrades",
		},
		{
			ID:          "2",
			Name:        "Narjis Residential Complex",
			Address:     "King Fahd Road, Narjis District, Jeddah",
			Image:       "https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=800&h=600&fit=crop",
			Status:      domain.ProjectActive,
			StartDate:   "2023-11-05",
			Description: "Bathtub and sanitary fittings for the new residential complex",
		},
		{
			ID:          "3",
			Name:        "Oasis Hotel",
			Address:     "Prince Sultan Street, North Khobar, Khobar",
			Image:       "https://images.unsplash.com/photo-1498050108023-c5249f4df085?w=800&h=600&fit=crop",
			Status:      domain.ProjectCompleted,
			StartDate:   "2023-08-01",
			EndDate:     "2023-12-20",
			Description: "Complete hotel bathroom refresh with luxury bathtub installation",
		},
		{
			ID:          "4",
			Name:        "Health Hospital",
			Address:     "King Abdullah Road, Malqa District, Riyadh",
			Image:       "https://images.unsplash.com/photo-1486312338219-ce68d2c6f44d?w=800&h=600&fit=crop",
			Status:      domain.ProjectPaused,
			StartDate:   "2024-01-10",
			Description: "Bathroom and sanitary facilities for the new hospital",
		},
	}
}

func Employees() []domain.Employee {
	return []domain.Employee{
		{
			ID:       "1",
			Name:     "Mohammed Ali",
			Email:    "mohammad@viken.com",
			Role:     domain.RoleAdmin,
			Approved: true,
			Title:    "Project Manager",
			JoinDate: "2022-05-10",
			Avatar:   "https://i.pravatar.cc/150?img=1",
		},
		{
			ID:       "2",
			Name:     "Ahmed Alnasser",
			Email:    "ahmed@viken.com",
			Role:     domain.RoleEmployee,
			Approved: true,
			Title:    "Installation Technician",
			JoinDate: "2022-08-15",
			Avatar:   "https://i.pravatar.cc/150?img=2",
		},
		{
			ID:       "3",
			Name:     "Khalid Alqahtani",
			Email:    "khalid@viken.com",
			Role:     domain.RoleEmployee,
			Approved: true,
			Title:    "Installation Technician",
			JoinDate: "2023-01-20",
			Avatar:   "https://i.pravatar.cc/150?img=3",
		},
		{
			ID:       "4",
			Name:     "Faisal Alshammari",
			Email:    "faisal@viken.com",
			Role:     domain.RoleEmployee,
			Approved: false,
			Title:    "Technician Assistant",
			JoinDate: "2024-02-05",
			Avatar:   "https://i.pravatar.cc/150?img=4",
		},
	}
}

func TimeEntries() []domain.TimeEntry {
	return []domain.TimeEntry{
		{
			ID:         "1",
			ProjectID:  "1",
			EmployeeID: "2",
			Date:       "2024-06-01",
			CheckIn:    "08:00",
			CheckOut:   "15:30",
			Notes:      "Installed 3 bathtubs on the first floor",
			PhotoURL:   "https://images.unsplash.com/photo-1581091226825-a6a2a5aee158?w=400&h=300&fit=crop",
			TotalHours: 7.5,
		},
		{
			ID:         "2",
			ProjectID:  "1",
			EmployeeID: "3",
			Date:       "2024-06-01",
			CheckIn:    "08:30",
			CheckOut:   "16:00",
			Notes:      "Installed drainage piping for the bathrooms",
			PhotoURL:   "https://images.unsplash.com/photo-1487058792275-0ad4aaf24ca7?w=400&h=300&fit=crop",
			TotalHours: 7.5,
		},
		{
			ID:         "3",
			ProjectID:  "2",
			EmployeeID: "2",
			Date:       "2024-06-02",
			CheckIn:    "07:45",
			CheckOut:   "16:30",
			Notes:      "Started second-floor bathtub installation",
			PhotoURL:   "https://images.unsplash.com/photo-1461749280684-dccba630e2f6?w=400&h=300&fit=crop",
			TotalHours: 8.75,
		},
		{
			ID:         "4",
			ProjectID:  "3",
			EmployeeID: "3",
			Date:       "2024-06-03",
			CheckIn:    "08:00",
			CheckOut:   "14:00",
			Notes:      "Finished installing all bathtubs",
			PhotoURL:   "https://images.unsplash.com/photo-1488590528505-98d2b5aba04b?w=400&h=300&fit=crop",
			TotalHours: 6,
		},
	}
}

// Seed loads the demo dataset into the given repositories.
func Seed(
	ctx context.Context,
	projects ports.ProjectRepository,
	employees ports.EmployeeRepository,
	entries ports.TimeEntryRepository,
) error {
	for _, p := range Projects() {
		if _, err := projects.Create(ctx, &p); err != nil {
			return err
		}
	}
	for _, e := range Employees() {
		if _, err := employees.Create(ctx, &e); err != nil {
			return err
		}
	}
	for _, t := range TimeEntries() {
		if _, err := entries.Create(ctx, &t); err != nil {
			return err
		}
	}
	return nil
}
