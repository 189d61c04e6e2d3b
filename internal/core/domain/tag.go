package domain

// Tag is a free-text label owned by a single user. Tags are shared
// between entries through entry_tag associations and are never deleted
// when an association is removed.
type Tag struct {
	TagID  int64  `json:"tagID"`
	UserID int64  `json:"userID"`
	Name   string `json:"name"`
}
