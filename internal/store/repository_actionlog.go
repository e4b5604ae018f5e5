package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Martinsschnee/pbweb/internal/logger"
	"github.com/Martinsschnee/pbweb/models"
)

// actionLogKey is the blob key of the action log inside the stats store.
const actionLogKey = "recent_logs"

// actionLogRepository is the blob-backed implementation of
// [ActionLogRepository]. The whole log lives in a single blob, newest
// entry first.
type actionLogRepository struct {
	blobs     BlobStore
	storeName string
	logger    *logger.Logger
}

func NewActionLogRepository(blobs BlobStore, storeName string, logger *logger.Logger) ActionLogRepository {
	logger.Debug().Str("store", storeName).Msg("creating action log repository")
	return &actionLogRepository{
		blobs:     blobs,
		storeName: storeName,
		logger:    logger,
	}
}

func (r *actionLogRepository) Get(ctx context.Context) ([]models.LogEntry, error) {
	data, err := r.blobs.Get(ctx, r.storeName, actionLogKey)
	if err != nil {
		if errors.Is(err, ErrBlobNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var logs []models.LogEntry
	if err := json.Unmarshal(data, &logs); err != nil {
		return nil, fmt.Errorf("error unmarshaling action log: %w", err)
	}

	return logs, nil
}

func (r *actionLogRepository) Put(ctx context.Context, logs []models.LogEntry) error {
	data, err := json.Marshal(logs)
	if err != nil {
		return fmt.Errorf("error marshaling action log: %w", err)
	}

	return r.blobs.Put(ctx, r.storeName, actionLogKey, data)
}
