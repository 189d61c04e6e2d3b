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
	"github.com/shopspring/decimal"
)

// LedgerService implements the entry ledger and the balance aggregator.
// Account names are always resolved before anything is written; an
// unresolved name fails the whole operation and nothing persists.
type LedgerService struct {
	EntryRepository   portsrepo.EntryRepository
	AccountRepository portsrepo.AccountRepository
	TagRepository     portsrepo.TagRepository
}

func NewLedgerService(entryRepo portsrepo.EntryRepository, accountRepo portsrepo.AccountRepository, tagRepo portsrepo.TagRepository) *LedgerService {
	return &LedgerService{
		EntryRepository:   entryRepo,
		AccountRepository: accountRepo,
		TagRepository:     tagRepo,
	}
}

// AddEntry records a double-entry money movement. The entry row and all
// its tag associations are persisted atomically; tags themselves are
// resolved up front via the idempotent get-or-create, so a failed write
// leaves at most reusable tag rows behind.
func (s *LedgerService) AddEntry(ctx context.Context, identity domain.Identity, req dto.CreateEntryRequest) (*domain.Entry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if identity.IsZero() {
		return nil, apperrors.ErrNoActiveUser
	}

	credit, err := s.AccountRepository.FindAccountByName(ctx, identity.UserID, req.CreditAccount)
	if err != nil {
		return nil, err
	}
	debit, err := s.AccountRepository.FindAccountByName(ctx, identity.UserID, req.DebitAccount)
	if err != nil {
		return nil, err
	}

	tagIDs := make([]int64, 0, len(req.Tags))
	for _, tagName := range req.Tags {
		tag, err := s.TagRepository.GetOrCreateTag(ctx, identity.UserID, tagName)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve tag %q: %w", tagName, err)
		}
		tagIDs = append(tagIDs, tag.TagID)
	}

	entry := domain.Entry{
		UserID:            identity.UserID,
		Who:               req.Who,
		When:              req.When,
		CreditAccountID:   credit.AccountID,
		CreditAccountName: credit.Name,
		DebitAccountID:    debit.AccountID,
		DebitAccountName:  debit.Name,
		Amount:            req.Amount,
		Description:       req.Description,
		Tags:              req.Tags,
	}

	saved, err := s.EntryRepository.SaveEntry(ctx, entry, tagIDs)
	if err != nil {
		logger.Error("Failed to save entry in repository", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Entry added",
		slog.Int64("entry_id", saved.EntryID),
		slog.String("credit_account", saved.CreditAccountName),
		slog.String("debit_account", saved.DebitAccountName),
		slog.String("amount", saved.Amount.String()),
	)
	return saved, nil
}

// DeleteEntry removes an entry and its tag associations atomically.
// A missing entry is a normal outcome reported as false, not an error.
func (s *LedgerService) DeleteEntry(ctx context.Context, identity domain.Identity, entryID int64) (bool, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if identity.IsZero() {
		return false, apperrors.ErrNoActiveUser
	}

	deleted, err := s.EntryRepository.DeleteEntry(ctx, identity.UserID, entryID)
	if err != nil {
		logger.Error("Failed to delete entry in repository", slog.String("error", err.Error()), slog.Int64("entry_id", entryID))
		return false, err
	}

	if deleted {
		logger.Info("Entry deleted", slog.Int64("entry_id", entryID))
	}
	return deleted, nil
}

// ListEntries returns the identity's entries in insertion order,
// optionally filtered by debit and/or credit account name (AND).
func (s *LedgerService) ListEntries(ctx context.Context, identity domain.Identity, params dto.ListEntriesParams) ([]domain.Entry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if identity.IsZero() {
		return nil, apperrors.ErrNoActiveUser
	}

	filter := portsrepo.EntryFilter{
		DebitAccountName:  params.DebitAccount,
		CreditAccountName: params.CreditAccount,
	}
	entries, err := s.EntryRepository.ListEntries(ctx, identity.UserID, filter)
	if err != nil {
		logger.Error("Failed to list entries from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	if entries == nil {
		return []domain.Entry{}, nil
	}
	return entries, nil
}

// GetAccountBalance computes the named account's net balance:
// sum(debit-side amounts) - sum(credit-side amounts). An account with
// no entries yields zero.
func (s *LedgerService) GetAccountBalance(ctx context.Context, identity domain.Identity, accountName string) (decimal.Decimal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if identity.IsZero() {
		return decimal.Zero, apperrors.ErrNoActiveUser
	}

	account, err := s.AccountRepository.FindAccountByName(ctx, identity.UserID, accountName)
	if err != nil {
		return decimal.Zero, err
	}

	balance, err := s.EntryRepository.AccountBalance(ctx, identity.UserID, account.AccountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to compute account balance", slog.String("error", err.Error()), slog.String("account_name", accountName))
		}
		return decimal.Zero, err
	}

	return balance, nil
}
