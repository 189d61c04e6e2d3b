package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/budgie-app/budgie/internal/apperrors"
	"github.com/budgie-app/budgie/internal/core/domain"
	portsrepo "github.com/budgie-app/budgie/internal/core/ports/repositories"
	"github.com/budgie-app/budgie/internal/dto"
	"github.com/budgie-app/budgie/internal/middleware"
	"github.com/budgie-app/budgie/internal/utils"
)

// UserService handles user registration and identity resolution.
// The credential material (hash + salt) is produced here at the
// boundary; the repositories store it opaquely.
type UserService struct {
	UserRepository portsrepo.UserRepository
}

func NewUserService(repo portsrepo.UserRepository) *UserService {
	return &UserService{UserRepository: repo}
}

// CreateUser registers a new user with a freshly salted password hash.
func (s *UserService) CreateUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	salt, err := utils.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	hash, err := utils.HashPassword(req.Password, salt)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		Email:        req.Email,
		PasswordHash: hash,
		Salt:         salt,
		Name:         req.Name,
		Created:      time.Now(),
	}

	created, err := s.UserRepository.SaveUser(ctx, user)
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save user in repository", slog.String("error", err.Error()))
		}
		return nil, err
	}

	logger.Info("User registered", slog.Int64("user_id", created.UserID))
	return created, nil
}

// GetUserByEmail retrieves a user by email.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	user, err := s.UserRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			logger.Error("Failed to find user by email", slog.String("error", err.Error()))
		}
		return nil, err
	}
	return user, nil
}

// ResolveIdentity looks a user up by email and returns the identity
// value used to scope all subsequent ledger operations. The identity is
// a value handed back to the caller, never a field mutated on the
// service, so concurrent sessions do not interfere.
func (s *UserService) ResolveIdentity(ctx context.Context, email string) (domain.Identity, error) {
	user, err := s.UserRepository.FindUserByEmail(ctx, email)
	if err != nil {
		return domain.Identity{}, err
	}
	return domain.Identity{UserID: user.UserID, Email: user.Email}, nil
}

// Authenticate verifies credentials and returns the user on success.
// Unknown emails and wrong passwords both yield ErrValidation so the
// two cases are indistinguishable to callers.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.UserRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrValidation)
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.Salt, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrValidation)
	}
	return user, nil
}
