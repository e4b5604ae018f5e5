package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Martinsschnee/pbweb/internal/logger"
	"github.com/Martinsschnee/pbweb/models"
)

// vaultKey is the blob key of the shared vault document inside the
// records store.
const vaultKey = "data"

// vaultRepository is the blob-backed implementation of [VaultRepository].
// The whole document lives in a single blob; every Put replaces it
// wholesale.
type vaultRepository struct {
	blobs     BlobStore
	storeName string
	logger    *logger.Logger
}

// NewVaultRepository constructs a [VaultRepository] reading and writing
// the vault document blob inside the given store name.
func NewVaultRepository(blobs BlobStore, storeName string, logger *logger.Logger) VaultRepository {
	logger.Debug().Str("store", storeName).Msg("creating vault repository")
	return &vaultRepository{
		blobs:     blobs,
		storeName: storeName,
		logger:    logger,
	}
}

// Get returns the current vault document.
//
// A missing blob, an unreadable store, and a corrupt document all degrade
// to an empty valid document: a broken store must never permanently lock
// out every user. The failure is logged server-side.
func (r *vaultRepository) Get(ctx context.Context) (models.VaultDocument, error) {
	log := logger.FromContext(ctx)

	data, err := r.blobs.Get(ctx, r.storeName, vaultKey)
	if err != nil {
		if !errors.Is(err, ErrBlobNotFound) {
			log.Err(err).Msg("vault document read failed, serving empty document")
		}
		return models.VaultDocument{}, nil
	}

	var doc models.VaultDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Err(err).Msg("vault document is corrupt, serving empty document")
		return models.VaultDocument{}, nil
	}

	return doc, nil
}

// Put replaces the vault document wholesale. There is no merge and no
// concurrency token: a concurrent writer's changes may be lost.
func (r *vaultRepository) Put(ctx context.Context, doc models.VaultDocument) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("error marshaling vault document: %w", err)
	}

	return r.blobs.Put(ctx, r.storeName, vaultKey, data)
}
