package domain

// Account represents a bookkeeping account owned by a single user.
// Type is a free-form classification ("asset", "income", ...); the
// ledger derives no behaviour from it, callers interpret balance signs
// per type.
type Account struct {
	AccountID   int64  `json:"accountID"`
	UserID      int64  `json:"userID"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
}
