// Package usecase implements the business logic for the inventory feature.
package usecase

import "shop_backend/internal/feature/inventory/domain"

var (
	ErrInventoryNotFound    = domain.ErrInventoryNotFound
	ErrSkuCodeAlreadyExists = domain.ErrSkuCodeAlreadyExists
	ErrInvalidSkuCode       = domain.ErrInvalidSkuCode
	ErrInvalidQuantity      = domain.ErrInvalidQuantity
)
