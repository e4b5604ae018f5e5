package models

import "time"

// RateLimitEntry is the per-client-IP failure counter backing the login
// lockout. Entries are ephemeral: a successful login resets the counter,
// and a stale entry is reinterpreted as zero once the lockout window has
// elapsed (stale lockouts self-heal at next use, they are never swept).
type RateLimitEntry struct {
	// FailureCount is the number of consecutive failed attempts.
	FailureCount int `json:"count"`

	// LastAttemptAt is the timestamp of the most recent attempt,
	// successful or not.
	LastAttemptAt time.Time `json:"lastAttempt"`
}

// RateLimitStatus is the result of consulting the rate limiter before an
// authentication attempt.
type RateLimitStatus struct {
	// Allowed reports whether the attempt may proceed.
	Allowed bool

	// RetryAfter is the remaining lockout duration when Allowed is false.
	RetryAfter time.Duration
}
