package service

import (
	"context"
	"time"

	"github.com/Martinsschnee/pbweb/internal/config"
	"github.com/Martinsschnee/pbweb/internal/logger"
	"github.com/Martinsschnee/pbweb/internal/store"
	"github.com/Martinsschnee/pbweb/models"
)

// rateLimiter is the concrete implementation of [RateLimiter], backed by
// one stored counter per client IP.
//
// Failure policy: reads fail open (an unreachable store is treated as "no
// prior attempts") and writes are attempt-and-ignore. An infrastructure
// outage must neither become a permanent lockout nor crash the login
// path.
type rateLimiter struct {
	rateLimits store.RateLimitRepository

	maxAttempts   int
	lockoutWindow time.Duration

	logger *logger.Logger
}

// NewRateLimiter constructs a [RateLimiter] with the configured attempt
// budget and lockout window.
func NewRateLimiter(rateLimits store.RateLimitRepository, cfg config.RateLimit, logger *logger.Logger) RateLimiter {
	return &rateLimiter{
		rateLimits:    rateLimits,
		maxAttempts:   cfg.MaxAttempts,
		lockoutWindow: cfg.LockoutWindow,
		logger:        logger,
	}
}

// Check reports whether an attempt from ip may proceed. An attempt is
// denied only while the counter has reached the budget AND the window
// since the last attempt has not yet elapsed.
func (r *rateLimiter) Check(ctx context.Context, ip string) models.RateLimitStatus {
	log := logger.FromContext(ctx)

	entry, err := r.rateLimits.Get(ctx, ip)
	if err != nil {
		log.Err(err).Str("ip", ip).Msg("rate limit read failed, failing open")
		return models.RateLimitStatus{Allowed: true}
	}

	elapsed := time.Since(entry.LastAttemptAt)
	if entry.FailureCount >= r.maxAttempts && elapsed < r.lockoutWindow {
		return models.RateLimitStatus{
			Allowed:    false,
			RetryAfter: r.lockoutWindow - elapsed,
		}
	}

	return models.RateLimitStatus{Allowed: true}
}

// Record updates the counter after an attempt. Success resets the
// counter; failure increments it, first reinterpreting a stale counter
// (last attempt outside the window) as zero. Stale lockouts self-heal
// this way, they are never proactively cleared.
func (r *rateLimiter) Record(ctx context.Context, ip string, success bool) {
	log := logger.FromContext(ctx)

	entry, err := r.rateLimits.Get(ctx, ip)
	if err != nil {
		log.Err(err).Str("ip", ip).Msg("rate limit read failed before update")
		entry = models.RateLimitEntry{}
	}

	now := time.Now()
	if success {
		entry = models.RateLimitEntry{FailureCount: 0, LastAttemptAt: now}
	} else {
		if now.Sub(entry.LastAttemptAt) > r.lockoutWindow {
			entry.FailureCount = 0
		}
		entry.FailureCount++
		entry.LastAttemptAt = now
	}

	if err := r.rateLimits.Put(ctx, ip, entry); err != nil {
		log.Err(err).Str("ip", ip).Msg("rate limit update failed, ignoring")
	}
}
