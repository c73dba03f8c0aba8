// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique "person" or "account".
// It contains only the most fundamental identity information; role and
// moderation state live on the attached Profile.
type User struct {
	ID             uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email          string    // The user's primary contact email, used as the login identifier.
	Name           string    // The user's display name.
	PasswordHash   string    // Bcrypt hash of the login password. Empty for webhook-provisioned accounts that have not set one.
	EmailConfirmed bool      // Whether the email address has been verified. Webhook-provisioned identities are pre-confirmed.
	Profile        *Profile  // The user's profile. Every account has exactly one.
	CreatedAt      time.Time // Timestamp of when this user account was created.
	UpdatedAt      time.Time // Timestamp of the last modification to this user's data.
}

// Profile holds per-account role and moderation state. It is created together
// with the User on registration or on webhook-driven identity provisioning.
type Profile struct {
	UserID    uuid.UUID // Foreign Key that links this profile to a core User entity.
	Role      Role      // The account's role: admin, author or user.
	IsActive  bool      // Deactivated profiles keep their data but lose all access.
	UpdatedAt time.Time // Timestamp of the last modification to this profile.
}

// CanManageContent reports whether the profile's role grants access to the
// admin surface (entitlement grants, publishing, catalog management).
func (p *Profile) CanManageContent() bool {
	if p == nil || !p.IsActive {
		return false
	}

	return p.Role == RoleAdmin || p.Role == RoleAuthor
}
