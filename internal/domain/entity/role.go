// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleAdmin indicates a site administrator with full access to the admin surface.
	RoleAdmin Role = "admin"
	// RoleAuthor indicates a content author; authors share the admin surface.
	RoleAuthor Role = "author"
	// RoleUser indicates a regular reader account.
	RoleUser Role = "user"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleAuthor, RoleUser:
		return true
	default:
		return false
	}
}
