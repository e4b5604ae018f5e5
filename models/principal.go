package models

// Principal is the authenticated identity and role associated with a
// request. It is extracted from a verified session token by the access
// gate and stored in the request context.
type Principal struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// IsAdmin reports whether the principal holds the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// ClientInfo carries the request metadata recorded in the action log and
// used to key the rate limiter.
type ClientInfo struct {
	IP        string
	UserAgent string
}
