package service

import (
	"context"
	"time"

	"github.com/Martinsschnee/pbweb/internal/logger"
	"github.com/Martinsschnee/pbweb/internal/store"
	"github.com/Martinsschnee/pbweb/internal/utils"
	"github.com/Martinsschnee/pbweb/models"
)

// actionLogService is the concrete implementation of [ActionLogService]:
// a newest-first list capped at [models.ActionLogCap] entries, stored as
// one blob.
type actionLogService struct {
	actionLog store.ActionLogRepository
	ids       *utils.UUIDGenerator
	logger    *logger.Logger
}

// NewActionLogService constructs an [ActionLogService] over the stats
// store.
func NewActionLogService(actionLog store.ActionLogRepository, ids *utils.UUIDGenerator, logger *logger.Logger) ActionLogService {
	return &actionLogService{
		actionLog: actionLog,
		ids:       ids,
		logger:    logger,
	}
}

// Append prepends an event to the log and truncates it to the cap.
//
// Best effort: read and write failures are logged and swallowed so that
// a broken stats store never blocks the operation being logged.
func (s *actionLogService) Append(ctx context.Context, action string, user models.User, client models.ClientInfo) {
	log := logger.FromContext(ctx)

	logs, err := s.actionLog.Get(ctx)
	if err != nil {
		log.Err(err).Msg("action log read failed, starting fresh")
		logs = nil
	}

	entry := models.LogEntry{
		ID:        s.ids.Generate(),
		Action:    action,
		Username:  user.Username,
		UserID:    user.ID,
		IP:        client.IP,
		UserAgent: client.UserAgent,
		Timestamp: time.Now(),
	}

	logs = append([]models.LogEntry{entry}, logs...)
	if len(logs) > models.ActionLogCap {
		logs = logs[:models.ActionLogCap]
	}

	if err := s.actionLog.Put(ctx, logs); err != nil {
		log.Err(err).Str("action", action).Msg("action log write failed, ignoring")
	}
}

// Recent returns the log, newest first.
func (s *actionLogService) Recent(ctx context.Context) ([]models.LogEntry, error) {
	return s.actionLog.Get(ctx)
}
