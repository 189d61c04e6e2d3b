package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is a single double-entry money movement: an exact decimal
// amount credited to one account and debited to another, on a date,
// attributed to an actor, optionally carrying tags.
//
// The credit and debit accounts may be the same account; nothing
// enforces inequality.
type Entry struct {
	EntryID           int64           `json:"entryID"`
	UserID            int64           `json:"userID"`
	Who               string          `json:"who"`
	When              time.Time       `json:"when"`
	CreditAccountID   int64           `json:"creditAccountID"`
	CreditAccountName string          `json:"creditAccountName"`
	DebitAccountID    int64           `json:"debitAccountID"`
	DebitAccountName  string          `json:"debitAccountName"`
	Amount            decimal.Decimal `json:"amount"`
	Description       string          `json:"description"`
	Tags              []string        `json:"tags"`
}
