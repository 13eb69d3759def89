package repository

import (
	"context"

	"gadgetshop/internal/domain/entity"
)

// SortOrder is the price ordering of a catalog query.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder maps "asc" to ascending and anything else to descending.
func ParseSortOrder(s string) SortOrder {
	if s == string(SortAsc) {
		return SortAsc
	}

	return SortDesc
}

// ProductFilter is the conjunctive predicate of a catalog query. Empty fields are not applied.
type ProductFilter struct {
	Search      string // Case-insensitive substring of the name.
	Category    string // Case-insensitive substring of the category.
	SubCategory string // Case-insensitive substring of the sub-category.
	Brand       string // Exact brand.
}

// IsEmpty reports whether the filter matches every product.
func (f ProductFilter) IsEmpty() bool {
	return f.Search == "" && f.Category == "" && f.SubCategory == "" && f.Brand == ""
}

// ProductRepository defines the product persistence operations.
type ProductRepository interface {
	// Find returns one page of products matching filter ordered by price, ties broken by id.
	Find(ctx context.Context, filter ProductFilter, sort SortOrder, skip, limit int) ([]*entity.Product, error)

	// Count returns how many products match filter.
	Count(ctx context.Context, filter ProductFilter) (int64, error)

	// FindByID retrieves a single product.
	FindByID(ctx context.Context, id string) (*entity.Product, error)

	// FindByIDs retrieves the products among ids whose name contains search.
	// Unknown ids are skipped, an empty search matches every name.
	FindByIDs(ctx context.Context, ids []string, search string) ([]*entity.Product, error)

	// FindByOwner retrieves the products listed by ownerEmail.
	FindByOwner(ctx context.Context, ownerEmail string) ([]*entity.Product, error)

	// Create persists a new product and assigns its ID.
	Create(ctx context.Context, product *entity.Product) error

	// Update applies patch to the product and returns the updated document.
	Update(ctx context.Context, id string, patch *entity.ProductPatch) (*entity.Product, error)

	// Delete removes a product.
	Delete(ctx context.Context, id string) error
}
