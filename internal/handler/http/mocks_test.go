package http

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Martinsschnee/pbweb/internal/config"
	"github.com/Martinsschnee/pbweb/internal/logger"
	"github.com/Martinsschnee/pbweb/internal/service"
	"github.com/Martinsschnee/pbweb/models"
)

var errInternal = errors.New("something broke")

// Tokens accepted by the mock auth service's ParseToken.
const (
	adminToken = "valid-admin-token"
	userToken  = "valid-user-token"
)

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	loginFn       func(ctx context.Context, creds models.LoginRequest, client models.ClientInfo) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Principal, error)
}

func (m *mockAuthService) Login(ctx context.Context, creds models.LoginRequest, client models.ClientInfo) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, creds, client)
	}
	return models.User{}, nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "issued-token"}, nil
}

// ParseToken resolves the two well-known test tokens unless overridden.
func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Principal, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	switch tokenString {
	case adminToken:
		return models.Principal{UserID: "u-admin", Username: "root", Role: models.RoleAdmin}, nil
	case userToken:
		return models.Principal{UserID: "u-alice", Username: "alice", Role: models.RoleUser}, nil
	default:
		return models.Principal{}, service.ErrTokenIsExpiredOrInvalid
	}
}

// ─────────────────────────────────────────────
// Mock: service.RecordService
// ─────────────────────────────────────────────

type mockRecordService struct {
	addFn          func(ctx context.Context, principal models.Principal, entries []models.RecordEntry) ([]models.Record, error)
	listFn         func(ctx context.Context, principal models.Principal, filter models.ListFilter) (models.RecordPage, error)
	checkFn        func(ctx context.Context, principal models.Principal, recordID string) (models.CheckedRecord, error)
	deleteFn       func(ctx context.Context, principal models.Principal, recordID string) error
	reassignFn     func(ctx context.Context, recordIDs []string, targetUserID string) (int, error)
	clearCheckedFn func(ctx context.Context) error
}

func (m *mockRecordService) Add(ctx context.Context, principal models.Principal, entries []models.RecordEntry) ([]models.Record, error) {
	if m.addFn != nil {
		return m.addFn(ctx, principal, entries)
	}
	return nil, nil
}

func (m *mockRecordService) List(ctx context.Context, principal models.Principal, filter models.ListFilter) (models.RecordPage, error) {
	if m.listFn != nil {
		return m.listFn(ctx, principal, filter)
	}
	return models.RecordPage{}, nil
}

func (m *mockRecordService) Check(ctx context.Context, principal models.Principal, recordID string) (models.CheckedRecord, error) {
	if m.checkFn != nil {
		return m.checkFn(ctx, principal, recordID)
	}
	return models.CheckedRecord{}, nil
}

func (m *mockRecordService) Delete(ctx context.Context, principal models.Principal, recordID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, principal, recordID)
	}
	return nil
}

func (m *mockRecordService) Reassign(ctx context.Context, recordIDs []string, targetUserID string) (int, error) {
	if m.reassignFn != nil {
		return m.reassignFn(ctx, recordIDs, targetUserID)
	}
	return 0, nil
}

func (m *mockRecordService) ClearChecked(ctx context.Context) error {
	if m.clearCheckedFn != nil {
		return m.clearCheckedFn(ctx)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: service.UserService
// ─────────────────────────────────────────────

type mockUserService struct {
	createFn func(ctx context.Context, req models.CreateUserRequest) (models.User, error)
	deleteFn func(ctx context.Context, actor models.Principal, userID string) (int, error)
	listFn   func(ctx context.Context) ([]models.User, error)
}

func (m *mockUserService) Create(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, req)
	}
	return models.User{}, nil
}

func (m *mockUserService) Delete(ctx context.Context, actor models.Principal, userID string) (int, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, actor, userID)
	}
	return 0, nil
}

func (m *mockUserService) List(ctx context.Context) ([]models.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: service.ActionLogService
// ─────────────────────────────────────────────

type mockActionLogService struct {
	appendFn func(ctx context.Context, action string, user models.User, client models.ClientInfo)
	recentFn func(ctx context.Context) ([]models.LogEntry, error)
}

func (m *mockActionLogService) Append(ctx context.Context, action string, user models.User, client models.ClientInfo) {
	if m.appendFn != nil {
		m.appendFn(ctx, action, user, client)
	}
}

func (m *mockActionLogService) Recent(ctx context.Context) ([]models.LogEntry, error) {
	if m.recentFn != nil {
		return m.recentFn(ctx)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: service.BlobService
// ─────────────────────────────────────────────

type mockBlobService struct {
	uploadFn func(ctx context.Context, storeName, key string, data json.RawMessage) error
}

func (m *mockBlobService) Upload(ctx context.Context, storeName, key string, data json.RawMessage) error {
	if m.uploadFn != nil {
		return m.uploadFn(ctx, storeName, key, data)
	}
	return nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// testServices assembles a Services value from mocks, filling unset
// fields with permissive defaults.
func testServices(mods ...func(*service.Services)) *service.Services {
	services := &service.Services{
		AuthService:      &mockAuthService{},
		RecordService:    &mockRecordService{},
		UserService:      &mockUserService{},
		ActionLogService: &mockActionLogService{},
		BlobService:      &mockBlobService{},
	}
	for _, mod := range mods {
		mod(services)
	}
	return services
}

func newTestHandler(services *service.Services) *Handler {
	cfg := config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "pbweb-test",
		TokenDuration: time.Hour,
		AdminPassword: "admin123",
	}
	return NewHandler(services, cfg, logger.Nop())
}
