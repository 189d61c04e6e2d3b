package repositories

import (
	"context"

	"github.com/budgie-app/budgie/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EntryFilter restricts entry listing by the resolved names of the
// debit and/or credit account. Both filters combine conjunctively.
// The zero value matches all entries of the user.
type EntryFilter struct {
	DebitAccountName  string
	CreditAccountName string
}

// EntryRepository defines persistence operations for entries and their
// tag associations.
type EntryRepository interface {
	// SaveEntry persists the entry and one entry_tag row per tag ID as a
	// single atomic unit and returns the entry with its generated ID.
	SaveEntry(ctx context.Context, entry domain.Entry, tagIDs []int64) (*domain.Entry, error)
	// DeleteEntry removes the entry and all its entry_tag rows
	// atomically. Returns false without error when the entry does not
	// exist for the user.
	DeleteEntry(ctx context.Context, userID int64, entryID int64) (bool, error)
	// ListEntries returns the user's entries in primary-key order, with
	// account names and tag texts resolved.
	ListEntries(ctx context.Context, userID int64, filter EntryFilter) ([]domain.Entry, error)
	// AccountBalance computes sum(debit-side amounts) - sum(credit-side
	// amounts) for the account; empty sums count as zero.
	AccountBalance(ctx context.Context, userID int64, accountID int64) (decimal.Decimal, error)
}
