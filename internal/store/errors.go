// Package store owns the on-disk document that holds every Pulseboard
// collection, and the error taxonomy shared by the layers above it.
package store

import "errors"

var (
	// ErrNotFound is returned when a requested user id does not exist.
	ErrNotFound = errors.New("user not found")
	// ErrConflict is returned when a username or email is already taken.
	ErrConflict = errors.New("already in use")
	// ErrValidation is returned when required input is missing or malformed.
	ErrValidation = errors.New("invalid input")
	// ErrInvalidCredentials is returned for any failed login. It deliberately
	// does not distinguish unknown users from wrong passwords.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrStorage is returned when the underlying document cannot be read or
	// written. It is fatal to the operation and never retried here.
	ErrStorage = errors.New("storage unavailable")
)
