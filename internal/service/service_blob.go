package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Martinsschnee/pbweb/internal/logger"
	"github.com/Martinsschnee/pbweb/internal/store"
	"github.com/Martinsschnee/pbweb/internal/validators"
	"github.com/Martinsschnee/pbweb/models"
)

// blobService is the concrete implementation of [BlobService], giving the
// administrative upload endpoint raw access to the blob store for manual
// restores of vault data.
type blobService struct {
	blobs     store.BlobStore
	validator validators.Validator
	logger    *logger.Logger
}

// NewBlobService constructs a [BlobService] over the raw blob store.
func NewBlobService(blobs store.BlobStore, logger *logger.Logger) BlobService {
	return &blobService{
		blobs:     blobs,
		validator: validators.NewRequestValidator(),
		logger:    logger,
	}
}

// Upload replaces the blob at (storeName, key) with data. The payload is
// stored verbatim; callers are trusted to supply a document matching the
// target store's schema.
func (s *blobService) Upload(ctx context.Context, storeName, key string, data json.RawMessage) error {
	if err := s.validator.Validate(ctx, models.UploadBlobRequest{StoreName: storeName, Key: key, Data: data}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := s.blobs.Put(ctx, storeName, key, data); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Str("store", storeName).Str("key", key).Msg("blob uploaded")

	return nil
}
