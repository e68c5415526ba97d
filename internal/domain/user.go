package domain

import "time"

// Role is the authorization tag stored per user. Only admin is special;
// every other user carries the empty default.
type Role string

const (
	RoleAdmin Role = "admin"
)

// User is the domain model for platform users.
type User struct {
	ID        string
	Name      string
	Email     string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin reports whether the stored role grants admin access.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
