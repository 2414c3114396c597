package domain

import "time"

// Roles a registered user can hold. The column carries a CHECK constraint,
// so the set here must stay in sync with the migration.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// ValidRole reports whether role is one of the allowed user roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}

// User is a registered (or invited) portal account.
//
// Username, email and password hash are nullable: an invited-but-not-yet
// activated account has only an email. InviteTokenHash and InviteExpiresAt
// are set and cleared together; an active account never has a pending token.
type User struct {
	ID           int64
	Username     *string
	Email        *string
	PasswordHash *string
	Role         string
	IsActive     bool

	InvitedAt       *time.Time
	InviteTokenHash *string
	InviteExpiresAt *time.Time
	LastLoginAt     *time.Time
}

// HasPendingInvite reports whether the row is in the INVITED state.
func (u User) HasPendingInvite() bool {
	return u.InviteTokenHash != nil && u.InviteExpiresAt != nil
}
