package domain

import "errors"

// Role is the closed set of principal roles. Route admission is decided
// exhaustively over these two values; there is no role-change operation.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrMalformedSession = errors.New("malformed session record")

// IsValid reports whether r is one of the two known roles.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

// Identity models an authenticated or pending principal. Identities are
// immutable once created: login and registration construct them, logout
// discards them, nothing updates them in place.
type Identity struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Approved bool   `json:"approved"`
}

// IsAdmin reports whether the identity carries the admin role.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}
