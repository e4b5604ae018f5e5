package http

import "errors"

// Sentinel errors used by the access gate middleware. Callers can match
// against them with [errors.Is].
var (
	// ErrMissingAuthCookie is returned when the incoming request carries
	// no session cookie at all.
	ErrMissingAuthCookie = errors.New("missing auth cookie")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header of the bearer-token path is absent or not a Bearer value.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)
