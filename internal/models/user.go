package models

import "time"

// User mirrors the app_user table.
type User struct {
	ID       int64     `db:"id"`
	Email    string    `db:"email"`
	Password string    `db:"password"`
	Salt     string    `db:"salt"`
	Name     string    `db:"name"`
	Created  time.Time `db:"created"`
}
