package repository

import (
	"context"

	"gadgetshop/internal/domain/entity"
)

// OrderRepository defines the order persistence operations. Orders are append-only.
type OrderRepository interface {
	// Create persists a new order and assigns its ID.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order.
	FindByID(ctx context.Context, id string) (*entity.Order, error)

	// FindByUser lists the orders of userID, newest first.
	FindByUser(ctx context.Context, userID string) ([]*entity.Order, error)
}
