package repositories

import (
	"context"

	"github.com/budgie-app/budgie/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// SaveUser inserts a new user and returns it with its generated ID.
	// Returns apperrors.ErrDuplicate when the email is already taken.
	SaveUser(ctx context.Context, user domain.User) (*domain.User, error)
	// FindUserByEmail returns apperrors.ErrUserNotFound when no user has the email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUserByID(ctx context.Context, userID int64) (*domain.User, error)
}
