package entity

import "time"

// Product is a catalog item listed by a seller or an admin.
type Product struct {
	ID          string
	Name        string
	Category    string
	SubCategory string
	Brand       string
	Price       float64 // Currency-agnostic unit price.
	Description string
	ImageURL    string
	Stock       int
	OwnerEmail  string // Email of the seller or admin who listed it.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsOwnedBy reports whether email listed this product.
func (p *Product) IsOwnedBy(email string) bool {
	return p.OwnerEmail != "" && p.OwnerEmail == email
}

// ProductPatch carries the fields an update may change. Nil means "leave as is".
type ProductPatch struct {
	Name        *string
	Category    *string
	SubCategory *string
	Brand       *string
	Price       *float64
	Description *string
	ImageURL    *string
	Stock       *int
}

// IsEmpty reports whether the patch changes nothing.
func (p *ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.Category == nil && p.SubCategory == nil && p.Brand == nil &&
		p.Price == nil && p.Description == nil && p.ImageURL == nil && p.Stock == nil
}
