package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Martinsschnee/pbweb/internal/logger"
	"github.com/Martinsschnee/pbweb/internal/store"
	"github.com/Martinsschnee/pbweb/internal/utils"
	"github.com/Martinsschnee/pbweb/internal/validators"
	"github.com/Martinsschnee/pbweb/models"
	"golang.org/x/crypto/bcrypt"
)

// userService is the concrete implementation of [UserService], operating
// on the user list inside the shared vault document.
type userService struct {
	vault     store.VaultRepository
	ids       *utils.UUIDGenerator
	validator validators.Validator
	logger    *logger.Logger
}

// NewUserService constructs a [UserService] over the vault document.
func NewUserService(vault store.VaultRepository, ids *utils.UUIDGenerator, logger *logger.Logger) UserService {
	return &userService{
		vault:     vault,
		ids:       ids,
		validator: validators.NewRequestValidator(),
		logger:    logger,
	}
}

// Create registers a new account. The username must be unique
// (case-sensitive exact match); the password is bcrypt-hashed before
// persistence and the plain text is never stored or returned. An
// unrecognised role defaults to the regular user role.
func (s *userService) Create(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	role := req.Role
	if !role.Valid() {
		role = models.RoleUser
	}

	doc, err := s.vault.Get(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("reading vault document failed: %w", err)
	}

	if doc.FindUserByUsername(req.Username) >= 0 {
		return models.User{}, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hashing password failed: %w", err)
	}

	user := models.User{
		ID:           s.ids.Generate(),
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
	}

	doc.Users = append(doc.Users, user)

	if err := s.vault.Put(ctx, doc); err != nil {
		return models.User{}, fmt.Errorf("writing vault document failed: %w", err)
	}

	logger.FromContext(ctx).Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("user created")

	return user.Sanitized(), nil
}

// Delete removes an account and clears the ownership of every record it
// owns; the records themselves are kept and become unassigned. Returns
// the number of records affected.
//
// The acting principal cannot delete itself ([ErrSelfDeletion]).
func (s *userService) Delete(ctx context.Context, actor models.Principal, userID string) (int, error) {
	if err := s.validator.Validate(ctx, models.DeleteUserRequest{ID: userID}); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if userID == actor.UserID {
		return 0, ErrSelfDeletion
	}

	doc, err := s.vault.Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("reading vault document failed: %w", err)
	}

	i := doc.FindUserByID(userID)
	if i < 0 {
		return 0, ErrUserNotFound
	}

	username := doc.Users[i].Username
	doc.Users = append(doc.Users[:i], doc.Users[i+1:]...)

	unassigned := 0
	for j := range doc.Records {
		if doc.Records[j].OwnerID.Is(userID) {
			doc.Records[j].OwnerID = models.Unassigned()
			unassigned++
		}
	}

	if err := s.vault.Put(ctx, doc); err != nil {
		return 0, fmt.Errorf("writing vault document failed: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("username", username).
		Int("records_unassigned", unassigned).
		Str("by", actor.Username).
		Msg("user deleted")

	return unassigned, nil
}

// List returns all stored accounts with their password hashes cleared,
// so the result is safe to return to callers.
func (s *userService) List(ctx context.Context) ([]models.User, error) {
	doc, err := s.vault.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading vault document failed: %w", err)
	}

	users := make([]models.User, len(doc.Users))
	for i, user := range doc.Users {
		users[i] = user.Sanitized()
	}

	return users, nil
}
