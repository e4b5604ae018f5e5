package service

import (
	"github.com/Martinsschnee/pbweb/internal/config"
	"github.com/Martinsschnee/pbweb/internal/logger"
	"github.com/Martinsschnee/pbweb/internal/store"
	"github.com/Martinsschnee/pbweb/internal/utils"
)

// Services aggregates all business logic services consumed by the HTTP
// layer.
type Services struct {
	AuthService      AuthService
	RateLimiter      RateLimiter
	RecordService    RecordService
	UserService      UserService
	ActionLogService ActionLogService
	BlobService      BlobService
}

// NewServices wires the service layer on top of the storages.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	ids := utils.NewUUIDGenerator()

	limiter := NewRateLimiter(storages.RateLimits, cfg.RateLimit, logger)
	actionLog := NewActionLogService(storages.ActionLog, ids, logger)

	return &Services{
		AuthService:      NewAuthService(storages.Vault, limiter, actionLog, cfg.App, logger),
		RateLimiter:      limiter,
		RecordService:    NewRecordService(storages.Vault, ids, logger),
		UserService:      NewUserService(storages.Vault, ids, logger),
		ActionLogService: actionLog,
		BlobService:      NewBlobService(storages.Blobs, logger),
	}
}
