// Package entity contains the core business objects of the project.
package entity

// Role is the authorization level stored in the roles table.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a known value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsAdmin reports whether the role grants access to the admin area.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}
