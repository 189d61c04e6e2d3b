package dto

import (
	"time"

	"github.com/budgie-app/budgie/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEntryRequest defines the data needed to add a ledger entry.
// Accounts are referenced by name; tags by text, created on demand.
type CreateEntryRequest struct {
	Who           string          `json:"who"`
	When          time.Time       `json:"when" binding:"required" time_format:"2006-01-02"`
	CreditAccount string          `json:"creditAccount" binding:"required"`
	DebitAccount  string          `json:"debitAccount" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Description   string          `json:"description"`
	Tags          []string        `json:"tags"`
}

// ListEntriesParams holds the optional entry listing filters; both
// combine conjunctively when given.
type ListEntriesParams struct {
	DebitAccount  string `form:"debit_account"`
	CreditAccount string `form:"credit_account"`
}

// EntryResponse defines the data returned for an entry, with account
// names and tag texts resolved.
type EntryResponse struct {
	EntryID       int64           `json:"entryID"`
	Who           string          `json:"who"`
	When          time.Time       `json:"when"`
	CreditAccount string          `json:"creditAccount"`
	DebitAccount  string          `json:"debitAccount"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Tags          []string        `json:"tags"`
}

// DeleteEntryResponse reports whether anything was deleted; deleting a
// missing entry is a normal outcome, not an error.
type DeleteEntryResponse struct {
	Deleted bool `json:"deleted"`
}

// ToEntryResponse converts a domain.Entry to EntryResponse.
func ToEntryResponse(e *domain.Entry) EntryResponse {
	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}
	return EntryResponse{
		EntryID:       e.EntryID,
		Who:           e.Who,
		When:          e.When,
		CreditAccount: e.CreditAccountName,
		DebitAccount:  e.DebitAccountName,
		Amount:        e.Amount,
		Description:   e.Description,
		Tags:          tags,
	}
}

// ToListEntryResponse converts a slice of domain.Entry to DTOs.
func ToListEntryResponse(entries []domain.Entry) []EntryResponse {
	res := make([]EntryResponse, len(entries))
	for i, e := range entries {
		res[i] = ToEntryResponse(&e)
	}
	return res
}
