package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Martinsschnee/pbweb/internal/logger"
	"github.com/Martinsschnee/pbweb/models"
)

// rateLimitRepository is the blob-backed implementation of
// [RateLimitRepository]. Each client IP owns one blob keyed by the IP
// itself, so attempts from different addresses never contend.
type rateLimitRepository struct {
	blobs     BlobStore
	storeName string
	logger    *logger.Logger
}

func NewRateLimitRepository(blobs BlobStore, storeName string, logger *logger.Logger) RateLimitRepository {
	logger.Debug().Str("store", storeName).Msg("creating rate limit repository")
	return &rateLimitRepository{
		blobs:     blobs,
		storeName: storeName,
		logger:    logger,
	}
}

// Get returns the entry for ip. A missing blob yields a zero entry;
// infrastructure failures are propagated so the caller can decide to fail
// open.
func (r *rateLimitRepository) Get(ctx context.Context, ip string) (models.RateLimitEntry, error) {
	data, err := r.blobs.Get(ctx, r.storeName, ip)
	if err != nil {
		if errors.Is(err, ErrBlobNotFound) {
			return models.RateLimitEntry{}, nil
		}
		return models.RateLimitEntry{}, err
	}

	var entry models.RateLimitEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		// A corrupt counter is indistinguishable from no counter.
		logger.FromContext(ctx).Err(err).Str("ip", ip).Msg("corrupt rate limit entry, treating as empty")
		return models.RateLimitEntry{}, nil
	}

	return entry, nil
}

func (r *rateLimitRepository) Put(ctx context.Context, ip string, entry models.RateLimitEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("error marshaling rate limit entry: %w", err)
	}

	return r.blobs.Put(ctx, r.storeName, ip, data)
}
