// Package store implements the persistence layer: a whole-document blob
// store with PostgreSQL, SQLite, and in-memory backends, and the typed
// repositories built on top of it.
//
// The store deliberately offers no transactions and no optimistic
// concurrency: every document is read and written wholesale, matching the
// deployment's accepted lost-update risk at low write concurrency.
package store

import (
	"context"

	"github.com/Martinsschnee/pbweb/models"
)

// BlobStore is the minimal contract of the underlying document store:
// opaque byte blobs addressed by (store name, key).
type BlobStore interface {
	// Get returns the blob at (store, key), or ErrBlobNotFound.
	Get(ctx context.Context, store, key string) ([]byte, error)

	// Put replaces the blob at (store, key) wholesale.
	Put(ctx context.Context, store, key string, data []byte) error
}

// VaultRepository reads and writes the single shared vault document.
type VaultRepository interface {
	// Get returns the current document. A missing blob or a read failure
	// degrades to an empty, valid document so that a corrupt store never
	// locks out all users.
	Get(ctx context.Context) (models.VaultDocument, error)

	// Put replaces the document wholesale.
	Put(ctx context.Context, doc models.VaultDocument) error
}

// RateLimitRepository reads and writes per-IP login failure counters.
type RateLimitRepository interface {
	// Get returns the entry for ip, or a zero entry if none was recorded.
	Get(ctx context.Context, ip string) (models.RateLimitEntry, error)

	// Put replaces the entry for ip.
	Put(ctx context.Context, ip string, entry models.RateLimitEntry) error
}

// ActionLogRepository reads and writes the capped action log.
type ActionLogRepository interface {
	// Get returns the log, newest first. A missing blob yields an empty
	// log.
	Get(ctx context.Context) ([]models.LogEntry, error)

	// Put replaces the log wholesale.
	Put(ctx context.Context, logs []models.LogEntry) error
}
