package service

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords so that login responses never leak account existence.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrNoValidEntries is returned by the add operation when not a
	// single submitted entry carries both a raw line and parsed data.
	ErrNoValidEntries = errors.New("no valid data found")

	ErrRecordNotFound = errors.New("record not found")
	ErrUserNotFound   = errors.New("user not found")

	ErrUsernameTaken = errors.New("username already exists")

	// ErrSelfDeletion is returned when an admin attempts to delete their
	// own account.
	ErrSelfDeletion = errors.New("cannot delete yourself")
)

// RateLimitError rejects a login attempt during an active lockout. It
// carries the remaining lockout duration as a retry hint for the caller.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("too many failed attempts, retry in %s", e.RetryAfter.Round(time.Second))
}

// AsRateLimitError unwraps err into a *RateLimitError if it is one.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rateLimitErr *RateLimitError
	ok := errors.As(err, &rateLimitErr)
	return rateLimitErr, ok
}
