// Package usecase implements the business logic for the auth feature.
package usecase

import "shop_backend/internal/feature/auth/domain"

// Aliases of the domain errors so adapters and handlers only need to depend on usecase.
var (
	ErrUserNotFound       = domain.ErrUserNotFound
	ErrUserAlreadyExists  = domain.ErrUserAlreadyExists
	ErrInvalidCredentials = domain.ErrInvalidCredentials
	ErrRoleNotFound       = domain.ErrRoleNotFound
)
