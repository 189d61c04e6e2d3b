package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry mirrors the entry table. Credit/debit account names are
// populated by joins when listing, not stored.
type Entry struct {
	ID                int64           `db:"id"`
	UserID            int64           `db:"user_id"`
	Who               string          `db:"who"`
	When              time.Time       `db:"when"`
	CreditAccountID   int64           `db:"credit_account_id"`
	CreditAccountName string          `db:"-"`
	DebitAccountID    int64           `db:"debit_account_id"`
	DebitAccountName  string          `db:"-"`
	Amount            decimal.Decimal `db:"amount"`
	Description       string          `db:"description"`
}

// EntryTag mirrors the entry_tag association table. (entry_id, tag_id)
// is unique to prevent duplicate tagging.
type EntryTag struct {
	ID      int64 `db:"id"`
	UserID  int64 `db:"user_id"`
	EntryID int64 `db:"entry_id"`
	TagID   int64 `db:"tag_id"`
}
