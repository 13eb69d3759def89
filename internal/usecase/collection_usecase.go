package usecase

import (
	"context"

	"gadgetshop/internal/domain/entity"
)

// UpdateListInput names one wishlist or cart membership change.
type UpdateListInput struct {
	List      entity.SavedList
	UserEmail string // Owner of the list; empty means the actor.
	ProductID string
}

// CollectionUsecase manages the wishlist and cart sets of a user.
type CollectionUsecase interface {
	// AddToList adds a product to the list. modified is false when it was already there.
	AddToList(ctx context.Context, actor *entity.User, input UpdateListInput) (modified bool, err error)

	// RemoveFromList removes a product from the list. Removing an absent product is a no-op.
	RemoveFromList(ctx context.Context, actor *entity.User, input UpdateListInput) (modified bool, err error)

	// GetListProducts resolves the list of userID to products, dropping stale ids.
	GetListProducts(ctx context.Context, actor *entity.User, userID string, list entity.SavedList) ([]*entity.Product, error)
}
