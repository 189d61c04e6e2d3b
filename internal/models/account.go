package models

// Account mirrors the account table. (name, user_id) is unique.
type Account struct {
	ID          int64  `db:"id"`
	UserID      int64  `db:"user_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Type        string `db:"type"`
}
