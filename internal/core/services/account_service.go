package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/budgie-app/budgie/internal/apperrors"
	"github.com/budgie-app/budgie/internal/core/domain"
	portsrepo "github.com/budgie-app/budgie/internal/core/ports/repositories"
	"github.com/budgie-app/budgie/internal/dto"
	"github.com/budgie-app/budgie/internal/middleware"
)

// AccountService implements the account registry. Every operation is
// scoped to the identity passed by the caller.
type AccountService struct {
	AccountRepository portsrepo.AccountRepository
}

func NewAccountService(repo portsrepo.AccountRepository) *AccountService {
	return &AccountService{AccountRepository: repo}
}

// CreateAccount inserts a new account owned by the identity.
func (s *AccountService) CreateAccount(ctx context.Context, identity domain.Identity, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if identity.IsZero() {
		return nil, apperrors.ErrNoActiveUser
	}

	account := domain.Account{
		UserID:      identity.UserID,
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
	}

	created, err := s.AccountRepository.SaveAccount(ctx, account)
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicateAccount) {
			logger.Error("Failed to save account in repository", slog.String("error", err.Error()), slog.String("account_name", req.Name))
		}
		return nil, err
	}

	logger.Info("Account created", slog.Int64("account_id", created.AccountID), slog.String("account_name", created.Name))
	return created, nil
}

// ListAccounts returns the identity's accounts in insertion order,
// optionally restricted to a type.
func (s *AccountService) ListAccounts(ctx context.Context, identity domain.Identity, params dto.ListAccountsParams) ([]domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if identity.IsZero() {
		return nil, apperrors.ErrNoActiveUser
	}

	filter := portsrepo.AccountFilter{Type: params.Type}
	accounts, err := s.AccountRepository.ListAccounts(ctx, identity.UserID, filter)
	if err != nil {
		logger.Error("Failed to list accounts from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}
