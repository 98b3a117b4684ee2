// Package domain defines domain-level errors for the auth feature.
package domain

import "errors"

// Domain errors for authentication operations.
// These errors represent business logic failures and should be handled appropriately by upper layers.
var (
	// ErrUserAlreadyExists indicates that a user with the given username or email already exists.
	ErrUserAlreadyExists = errors.New("user with this username or email already exists")

	// ErrUserNotFound indicates that no user was found with the given criteria.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials indicates that the provided credentials are incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrRoleNotFound indicates that at least one requested role does not exist.
	ErrRoleNotFound = errors.New("role not found")
)
