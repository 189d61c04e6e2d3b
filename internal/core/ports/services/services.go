package services

import (
	"context"

	"github.com/budgie-app/budgie/internal/core/domain"
	"github.com/budgie-app/budgie/internal/dto"
	"github.com/shopspring/decimal"
)

// UserSvcFacade exposes user registration and identity resolution.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	// ResolveIdentity looks a user up by email and returns the identity
	// value threaded through every subsequent call. Fails with
	// apperrors.ErrUserNotFound for an unknown email.
	ResolveIdentity(ctx context.Context, email string) (domain.Identity, error)
	// Authenticate verifies credentials and returns the user on success.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}

// AccountSvcFacade exposes the account registry.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, identity domain.Identity, req dto.CreateAccountRequest) (*domain.Account, error)
	ListAccounts(ctx context.Context, identity domain.Identity, params dto.ListAccountsParams) ([]domain.Account, error)
}

// TagSvcFacade exposes the tag registry.
type TagSvcFacade interface {
	GetOrCreateTag(ctx context.Context, identity domain.Identity, name string) (*domain.Tag, error)
	CreateTag(ctx context.Context, identity domain.Identity, name string) (*domain.Tag, error)
}

// LedgerSvcFacade exposes the entry ledger and the balance aggregator.
type LedgerSvcFacade interface {
	AddEntry(ctx context.Context, identity domain.Identity, req dto.CreateEntryRequest) (*domain.Entry, error)
	DeleteEntry(ctx context.Context, identity domain.Identity, entryID int64) (bool, error)
	ListEntries(ctx context.Context, identity domain.Identity, params dto.ListEntriesParams) ([]domain.Entry, error)
	GetAccountBalance(ctx context.Context, identity domain.Identity, accountName string) (decimal.Decimal, error)
}

// ServiceContainer bundles the service facades handed to the handlers.
type ServiceContainer struct {
	User    UserSvcFacade
	Account AccountSvcFacade
	Tag     TagSvcFacade
	Ledger  LedgerSvcFacade
}
