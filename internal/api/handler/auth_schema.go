package handler

import "github.com/viken/timetracker/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// sessionResponse mirrors what the dashboard needs after any auth call: the
// active identity (or null) and whether an auth operation is in flight.
type sessionResponse struct {
	User    *domain.Identity `json:"user"`
	Loading bool             `json:"loading"`
}
