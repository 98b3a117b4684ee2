// Package domain defines domain-level errors for the inventory feature.
package domain

import "errors"

var (
	// ErrInventoryNotFound indicates that no inventory record matched.
	ErrInventoryNotFound = errors.New("inventory not found")

	// ErrSkuCodeAlreadyExists indicates that another record already uses the SKU code.
	ErrSkuCodeAlreadyExists = errors.New("sku code already exists")

	// ErrInvalidSkuCode indicates a blank or malformed SKU code.
	ErrInvalidSkuCode = errors.New("invalid sku code")

	// ErrInvalidQuantity indicates a negative stock quantity.
	ErrInvalidQuantity = errors.New("quantity must not be negative")
)
