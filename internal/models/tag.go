package models

// Tag mirrors the tag table. (user_id, tag) is unique.
type Tag struct {
	ID     int64  `db:"id"`
	UserID int64  `db:"user_id"`
	Tag    string `db:"tag"`
}
