package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrUserNotFound indicates that no user exists for a given email.
var ErrUserNotFound = errors.New("user not found")

// ErrNoActiveUser indicates that an operation was attempted without an established identity.
var ErrNoActiveUser = errors.New("no active user")

// ErrAccountNotFound indicates that an account name did not resolve for the current user.
var ErrAccountNotFound = errors.New("account not found")

// ErrDuplicateAccount indicates a (name, user) uniqueness violation on account creation.
var ErrDuplicateAccount = errors.New("account already exists")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")
