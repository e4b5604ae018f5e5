package store

import (
	"context"

	"github.com/Martinsschnee/pbweb/internal/config"
	"github.com/Martinsschnee/pbweb/internal/logger"
)

// Storages aggregates the typed repositories and the raw blob store they
// share. The raw store is exposed for the administrative blob upload
// endpoint, which writes arbitrary (store, key) blobs.
type Storages struct {
	Vault      VaultRepository
	RateLimits RateLimitRepository
	ActionLog  ActionLogRepository
	Blobs      BlobStore
}

// NewStorages selects the blob backend from configuration and wires the
// repositories on top of it.
//
// Backend selection: PostgreSQL when a DSN is configured, otherwise
// SQLite when a file path is configured, otherwise a non-persistent
// in-memory store (development only; a warning is logged).
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	blobs, err := newBlobStore(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		Vault:      NewVaultRepository(blobs, cfg.Blob.RecordsStore, log),
		RateLimits: NewRateLimitRepository(blobs, cfg.Blob.RateLimitStore, log),
		ActionLog:  NewActionLogRepository(blobs, cfg.Blob.StatsStore, log),
		Blobs:      blobs,
	}, nil
}

func newBlobStore(ctx context.Context, cfg config.Storage, log *logger.Logger) (BlobStore, error) {
	switch {
	case cfg.DB.DSN != "":
		return NewPostgresBlobStore(ctx, cfg.DB, log)
	case cfg.SQLitePath != "":
		return NewSQLiteBlobStore(ctx, cfg, log)
	default:
		log.Warn().Msg("no database configured, using non-persistent in-memory blob store")
		return NewMemoryBlobStore(), nil
	}
}
