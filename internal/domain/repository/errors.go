// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import "gadgetshop/internal/errors"

// Domain-specific errors returned by every store implementation.
var (
	// ErrInvalidID is returned when an identifier is not in the store's key format.
	ErrInvalidID = errors.New("invalid id")
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when trying to register an email twice.
	ErrDuplicateUser = errors.New("user already exists")
	// ErrFlashSaleNotFound is returned when no flash sale matches.
	ErrFlashSaleNotFound = errors.New("flash sale not found")
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
)
