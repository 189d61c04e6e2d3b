package repositories

import (
	"context"

	"github.com/budgie-app/budgie/internal/core/domain"
)

// AccountFilter restricts account listing. The zero value matches all
// accounts of the user.
type AccountFilter struct {
	Type string
}

// AccountRepository defines persistence operations for accounts.
// All operations are scoped to the owning user.
type AccountRepository interface {
	// SaveAccount inserts a new account and returns it with its generated ID.
	// Returns apperrors.ErrDuplicateAccount when (name, user) already exists.
	SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error)
	// FindAccountByName returns apperrors.ErrAccountNotFound when the name
	// does not resolve for the user.
	FindAccountByName(ctx context.Context, userID int64, name string) (*domain.Account, error)
	// ListAccounts returns the user's accounts in primary-key order.
	ListAccounts(ctx context.Context, userID int64, filter AccountFilter) ([]domain.Account, error)
}
