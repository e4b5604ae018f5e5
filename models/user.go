package models

import "time"

// Role describes the authorization level of a user account.
type Role string

const (
	// RoleAdmin grants access to user administration, statistics,
	// record reassignment, and the blob upload endpoint.
	RoleAdmin Role = "admin"

	// RoleUser grants access only to records owned by the account.
	RoleUser Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// ReservedAdminUsername is the username of the bootstrap administrator
// identity. A stored account carrying this username is always treated as
// an admin regardless of its persisted role (see EnforceReservedAdminRole).
const ReservedAdminUsername = "admin"

// User represents an account entity used for authentication and
// authorization. The password hash must survive JSON persistence of the
// vault document, so API-facing code clears it via Sanitized before
// returning a User to callers.
type User struct {
	// ID is the unique identifier of the user (UUID).
	ID string `json:"id"`

	// Username is the unique login identifier. Matching is case-sensitive.
	Username string `json:"username"`

	// PasswordHash stores the bcrypt hash of the user's password. It is
	// serialized for storage; clear it with Sanitized before exposing a
	// User through the API.
	PasswordHash string `json:"passwordHash,omitempty"`

	// Role is the authorization level of the account.
	Role Role `json:"role"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Sanitized returns a copy safe to expose through the API: the password
// hash is cleared and, being omitempty, disappears from JSON output.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}

// EnforceReservedAdminRole forces the admin role on accounts carrying the
// reserved bootstrap username. This protects the bootstrap identity from a
// privilege downgrade introduced through data corruption or a manual edit
// of the stored user list.
func EnforceReservedAdminRole(u *User) {
	if u.Username == ReservedAdminUsername {
		u.Role = RoleAdmin
	}
}
