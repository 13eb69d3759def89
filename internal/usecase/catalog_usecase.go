package usecase

import (
	"context"
	"time"

	"gadgetshop/internal/domain/entity"
)

// ListProductsInput carries the catalog filters and paging of a product listing.
// Zero Page and Limit fall back to the configured defaults.
type ListProductsInput struct {
	Search      string
	Category    string
	SubCategory string
	Brand       string
	Sort        string // "asc" or anything else for descending price
	Page        int
	Limit       int
}

// ListProductsOutput is one page of the catalog. Brands and Categories are derived
// from the returned page only.
type ListProductsOutput struct {
	Products      []*entity.Product
	Brands        []string
	Categories    []string
	TotalProducts int64
	Page          int
	Limit         int
}

// FlashSaleProductsInput carries the search and paging of a flash-sale listing.
type FlashSaleProductsInput struct {
	Search string
	Page   int
	Limit  int
}

// FlashSaleState tells the caller which branch of the flash-sale lookup produced the output.
type FlashSaleState string

const (
	FlashSaleStateActive       FlashSaleState = "active"
	FlashSaleStateInactive     FlashSaleState = "inactive"      // a sale exists but its window does not contain now
	FlashSaleStateNone         FlashSaleState = "none"          // no sale was ever created
	FlashSaleStateNoProducts   FlashSaleState = "no_products"   // the active sale has no valid product ids
	FlashSaleStateNoDiscounted FlashSaleState = "no_discounted" // products resolved but none is cheaper under the sale
)

// Pagination describes an in-memory paginated result.
type Pagination struct {
	TotalProducts int
	TotalPages    int
	CurrentPage   int
	PageSize      int
}

// FlashSaleProductsOutput is the flash-sale listing. Only State, Message and
// FlashSaleID are set outside FlashSaleStateActive.
type FlashSaleProductsOutput struct {
	State         FlashSaleState
	Message       string
	FlashSaleID   string
	Name          string
	Discount      float64
	EndTime       time.Time
	TimeRemaining string
	Products      []entity.DiscountedProduct
	TotalProducts int // discounted products across all pages
	TotalResolved int // products resolved before the discount filter
	Pagination    Pagination
}

// CatalogUsecase defines the read-only catalog queries.
type CatalogUsecase interface {
	// ListProducts filters, sorts and pages the product catalog.
	ListProducts(ctx context.Context, input ListProductsInput) (*ListProductsOutput, error)

	// GetFlashSaleProducts prices the products of the currently active flash sale.
	GetFlashSaleProducts(ctx context.Context, input FlashSaleProductsInput) (*FlashSaleProductsOutput, error)
}
