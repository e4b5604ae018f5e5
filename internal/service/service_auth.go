package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Martinsschnee/pbweb/internal/config"
	"github.com/Martinsschnee/pbweb/internal/logger"
	"github.com/Martinsschnee/pbweb/internal/store"
	"github.com/Martinsschnee/pbweb/internal/utils"
	"github.com/Martinsschnee/pbweb/internal/validators"
	"github.com/Martinsschnee/pbweb/models"
	"golang.org/x/crypto/bcrypt"
)

// bootstrapAdminID is the fixed identity of the configuration-defined
// admin account. It never exists in the stored user list.
const bootstrapAdminID = "1"

// authService is the concrete implementation of [AuthService]. It checks
// the bootstrap admin identity first, then the stored user list, with the
// rate limiter consulted before any credential comparison.
type authService struct {
	vault     store.VaultRepository
	limiter   RateLimiter
	actionLog ActionLogService
	validator validators.Validator

	adminPassword string
	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the vault document
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(vault store.VaultRepository, limiter RateLimiter, actionLog ActionLogService, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		vault:         vault,
		limiter:       limiter,
		actionLog:     actionLog,
		validator:     validators.NewRequestValidator(),
		adminPassword: cfg.AdminPassword,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Login authenticates the given credentials.
//
// Flow:
//  1. The rate limiter is consulted for client.IP; an active lockout
//     rejects the attempt with [RateLimitError] before any comparison.
//  2. The bootstrap admin identity is tried first, then the stored user
//     list by username.
//  3. The outcome is recorded with the limiter (reset on success,
//     increment on failure).
//  4. On success an action log entry is appended, best effort.
//
// Unknown usernames and wrong passwords both return
// [ErrInvalidCredentials] so responses never leak account existence.
func (a *authService) Login(ctx context.Context, creds models.LoginRequest, client models.ClientInfo) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, creds); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if status := a.limiter.Check(ctx, client.IP); !status.Allowed {
		log.Warn().Str("ip", client.IP).Dur("retry_after", status.RetryAfter).Msg("login attempt during active lockout")
		return models.User{}, &RateLimitError{RetryAfter: status.RetryAfter}
	}

	user, err := a.verifyCredentials(ctx, creds)
	a.limiter.Record(ctx, client.IP, err == nil)
	if err != nil {
		log.Warn().Str("username", creds.Username).Str("ip", client.IP).Msg("failed login attempt")
		return models.User{}, err
	}

	a.actionLog.Append(ctx, "login", user, client)
	log.Info().Str("username", user.Username).Str("ip", client.IP).Msg("user logged in")

	return user, nil
}

// verifyCredentials resolves the credentials against the bootstrap admin
// identity first and the stored user list second.
func (a *authService) verifyCredentials(ctx context.Context, creds models.LoginRequest) (models.User, error) {
	if creds.Username == models.ReservedAdminUsername {
		// The bootstrap password lives in deployment configuration, not
		// in the store; it is hashed on each check.
		hash, err := bcrypt.GenerateFromPassword([]byte(a.adminPassword), bcrypt.DefaultCost)
		if err == nil && bcrypt.CompareHashAndPassword(hash, []byte(creds.Password)) == nil {
			return models.User{
				ID:       bootstrapAdminID,
				Username: models.ReservedAdminUsername,
				Role:     models.RoleAdmin,
			}, nil
		}
	}

	doc, err := a.vault.Get(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	i := doc.FindUserByUsername(creds.Username)
	if i < 0 {
		return models.User{}, ErrInvalidCredentials
	}

	user := doc.Users[i]
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}

	models.EnforceReservedAdminRole(&user)

	return user, nil
}

// CreateToken issues a signed session token for the given user.
//
// The token is signed with the configured sign key, carries the issuer
// claim, and expires after the configured duration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("token creation failed: %w", err)
	}

	return token, nil
}

// ParseToken validates and parses a raw session token string.
//
// Any validation failure (expired, wrong issuer or signature, malformed)
// is normalised to [ErrTokenIsExpiredOrInvalid] so that callers do not
// need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Principal, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Principal{}, ErrTokenIsExpiredOrInvalid
	}

	return token.Principal(), nil
}
