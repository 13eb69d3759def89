package usecase

import (
	"context"

	"gadgetshop/internal/domain/entity"
)

// CreateProductInput defines the data required to list a new product.
type CreateProductInput struct {
	Name        string
	Category    string
	SubCategory string
	Brand       string
	Price       float64
	Description string
	ImageURL    string
	Stock       int
}

// ProductUsecase defines the product management operations.
// Mutations are allowed for the product owner or an admin.
type ProductUsecase interface {
	GetProduct(ctx context.Context, id string) (*entity.Product, error)

	// CreateProduct lists a product owned by actor.
	CreateProduct(ctx context.Context, actor *entity.User, input CreateProductInput) (*entity.Product, error)

	UpdateProduct(ctx context.Context, actor *entity.User, id string, patch *entity.ProductPatch) (*entity.Product, error)

	DeleteProduct(ctx context.Context, actor *entity.User, id string) error

	// ListOwnedProducts returns the products listed by ownerEmail. Actor must be that owner or an admin.
	ListOwnedProducts(ctx context.Context, actor *entity.User, ownerEmail string) ([]*entity.Product, error)
}
