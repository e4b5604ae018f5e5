// Package service implements the business logic of the vault: session
// issuing with brute-force lockout, ownership-filtered record access, the
// user lifecycle with its ownership cascade, and the capped action log.
//
// Every mutating operation follows the whole-document protocol of the
// store layer: read the shared document, change it in memory, write it
// back wholesale. There is no cross-request locking; two concurrent
// mutations can race and the later writer wins (see the store package).
package service

import (
	"context"
	"encoding/json"

	"github.com/Martinsschnee/pbweb/models"
)

// AuthService verifies credentials and manages session tokens.
type AuthService interface {
	// Login authenticates the given credentials. The rate limiter is
	// consulted for client.IP before any credential comparison; a
	// successful login appends an action log entry.
	Login(ctx context.Context, creds models.LoginRequest, client models.ClientInfo) (models.User, error)

	// CreateToken issues a signed session token for the user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken verifies signature, issuer, and expiry of a raw token
	// and returns the principal it describes.
	ParseToken(ctx context.Context, tokenString string) (models.Principal, error)
}

// RateLimiter tracks login failures per client IP and enforces the
// time-boxed lockout.
type RateLimiter interface {
	// Check reports whether an attempt from ip may proceed. It fails
	// open: an unreadable store counts as no prior attempts.
	Check(ctx context.Context, ip string) models.RateLimitStatus

	// Record updates the counter after an attempt. Write failures are
	// logged and ignored so that bookkeeping never blocks a login.
	Record(ctx context.Context, ip string, success bool)
}

// RecordService exposes the ownership-filtered record operations.
type RecordService interface {
	// Add creates records for the valid subset of entries, owned by the
	// principal. It fails only when no entry is valid.
	Add(ctx context.Context, principal models.Principal, entries []models.RecordEntry) ([]models.Record, error)

	// List returns one page of the principal's visible active records
	// plus the full visible checked set.
	List(ctx context.Context, principal models.Principal, filter models.ListFilter) (models.RecordPage, error)

	// Check promotes an active record to the checked set, exactly once.
	Check(ctx context.Context, principal models.Principal, recordID string) (models.CheckedRecord, error)

	// Delete removes a record from whichever set contains it.
	Delete(ctx context.Context, principal models.Principal, recordID string) error

	// Reassign sets the owner of every listed record present in the
	// active set and returns the count actually updated. Admin only;
	// enforced by the access gate.
	Reassign(ctx context.Context, recordIDs []string, targetUserID string) (int, error)

	// ClearChecked empties the checked set. Idempotent. Admin only;
	// enforced by the access gate.
	ClearChecked(ctx context.Context) error
}

// UserService manages accounts. All operations are admin only; enforced
// by the access gate.
type UserService interface {
	// Create registers a new account with a unique username.
	Create(ctx context.Context, req models.CreateUserRequest) (models.User, error)

	// Delete removes an account and unassigns every record it owns,
	// returning the number of records affected. The acting principal
	// cannot delete itself.
	Delete(ctx context.Context, actor models.Principal, userID string) (int, error)

	// List returns all accounts with password hashes cleared.
	List(ctx context.Context) ([]models.User, error)
}

// ActionLogService appends to and reads the capped security event log.
type ActionLogService interface {
	// Append records an event, best effort: failures are logged and
	// swallowed so they never block the primary operation.
	Append(ctx context.Context, action string, user models.User, client models.ClientInfo)

	// Recent returns the log, newest first.
	Recent(ctx context.Context) ([]models.LogEntry, error)
}

// BlobService backs the administrative blob upload endpoint.
type BlobService interface {
	// Upload replaces the blob at (storeName, key) with data.
	Upload(ctx context.Context, storeName, key string, data json.RawMessage) error
}
