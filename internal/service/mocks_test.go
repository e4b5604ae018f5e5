package service

import (
	"context"
	"errors"

	"github.com/Martinsschnee/pbweb/internal/utils"
	"github.com/Martinsschnee/pbweb/models"
)

var errStorage = errors.New("storage error")

func testIDs() *utils.UUIDGenerator {
	return utils.NewUUIDGenerator()
}

// ─────────────────────────────────────────────
// Mock: store.VaultRepository
// ─────────────────────────────────────────────

type mockVaultRepository struct {
	getFn func(ctx context.Context) (models.VaultDocument, error)
	putFn func(ctx context.Context, doc models.VaultDocument) error
}

func (m *mockVaultRepository) Get(ctx context.Context) (models.VaultDocument, error) {
	if m.getFn != nil {
		return m.getFn(ctx)
	}
	return models.VaultDocument{}, nil
}

func (m *mockVaultRepository) Put(ctx context.Context, doc models.VaultDocument) error {
	if m.putFn != nil {
		return m.putFn(ctx, doc)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.RateLimitRepository
// ─────────────────────────────────────────────

type mockRateLimitRepository struct {
	getFn func(ctx context.Context, ip string) (models.RateLimitEntry, error)
	putFn func(ctx context.Context, ip string, entry models.RateLimitEntry) error
}

func (m *mockRateLimitRepository) Get(ctx context.Context, ip string) (models.RateLimitEntry, error) {
	if m.getFn != nil {
		return m.getFn(ctx, ip)
	}
	return models.RateLimitEntry{}, nil
}

func (m *mockRateLimitRepository) Put(ctx context.Context, ip string, entry models.RateLimitEntry) error {
	if m.putFn != nil {
		return m.putFn(ctx, ip, entry)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.ActionLogRepository
// ─────────────────────────────────────────────

type mockActionLogRepository struct {
	getFn func(ctx context.Context) ([]models.LogEntry, error)
	putFn func(ctx context.Context, logs []models.LogEntry) error
}

func (m *mockActionLogRepository) Get(ctx context.Context) ([]models.LogEntry, error) {
	if m.getFn != nil {
		return m.getFn(ctx)
	}
	return nil, nil
}

func (m *mockActionLogRepository) Put(ctx context.Context, logs []models.LogEntry) error {
	if m.putFn != nil {
		return m.putFn(ctx, logs)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.BlobStore
// ─────────────────────────────────────────────

type mockBlobStore struct {
	getFn func(ctx context.Context, store, key string) ([]byte, error)
	putFn func(ctx context.Context, store, key string, data []byte) error
}

func (m *mockBlobStore) Get(ctx context.Context, store, key string) ([]byte, error) {
	if m.getFn != nil {
		return m.getFn(ctx, store, key)
	}
	return nil, nil
}

func (m *mockBlobStore) Put(ctx context.Context, store, key string, data []byte) error {
	if m.putFn != nil {
		return m.putFn(ctx, store, key, data)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: RateLimiter
// ─────────────────────────────────────────────

type mockLimiter struct {
	checkFn  func(ctx context.Context, ip string) models.RateLimitStatus
	recordFn func(ctx context.Context, ip string, success bool)
}

func (m *mockLimiter) Check(ctx context.Context, ip string) models.RateLimitStatus {
	if m.checkFn != nil {
		return m.checkFn(ctx, ip)
	}
	return models.RateLimitStatus{Allowed: true}
}

func (m *mockLimiter) Record(ctx context.Context, ip string, success bool) {
	if m.recordFn != nil {
		m.recordFn(ctx, ip, success)
	}
}

// ─────────────────────────────────────────────
// Mock: ActionLogService
// ─────────────────────────────────────────────

type mockActionLog struct {
	appendFn func(ctx context.Context, action string, user models.User, client models.ClientInfo)
	recentFn func(ctx context.Context) ([]models.LogEntry, error)
}

func (m *mockActionLog) Append(ctx context.Context, action string, user models.User, client models.ClientInfo) {
	if m.appendFn != nil {
		m.appendFn(ctx, action, user, client)
	}
}

func (m *mockActionLog) Recent(ctx context.Context) ([]models.LogEntry, error) {
	if m.recentFn != nil {
		return m.recentFn(ctx)
	}
	return nil, nil
}
