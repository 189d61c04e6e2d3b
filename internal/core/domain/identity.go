package domain

// Identity is the resolved acting user for a single logical session.
// It is passed as a value to every service call rather than held as
// shared mutable state, so concurrent callers never observe each
// other's identity.
type Identity struct {
	UserID int64  `json:"userID"`
	Email  string `json:"email"`
}

// IsZero reports whether no identity has been established.
func (i Identity) IsZero() bool {
	return i.UserID == 0
}
