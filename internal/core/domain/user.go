package domain

import "time"

// User represents a registered user of the ledger.
// PasswordHash and Salt are opaque to the core: they are produced and
// verified by the auth boundary and only stored here.
type User struct {
	UserID       int64     `json:"userID"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	Name         string    `json:"name"`
	Created      time.Time `json:"created"`
}
