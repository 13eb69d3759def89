package entity

import "time"

// FlashSale applies a percentage discount to a set of products during a time window.
type FlashSale struct {
	ID         string
	Name       string
	ProductIDs []string
	Discount   float64 // Percentage in [0, 100].
	StartTime  time.Time
	EndTime    time.Time
	CreatedAt  time.Time
}

// IsActiveAt reports whether at falls inside the inclusive [StartTime, EndTime] window.
func (f *FlashSale) IsActiveAt(at time.Time) bool {
	return !at.Before(f.StartTime) && !at.After(f.EndTime)
}

// DiscountedPrice returns price reduced by the sale percentage.
func (f *FlashSale) DiscountedPrice(price float64) float64 {
	return price - (price * f.Discount / 100)
}

// Includes reports whether productID takes part in the sale.
func (f *FlashSale) Includes(productID string) bool {
	for _, id := range f.ProductIDs {
		if id == productID {
			return true
		}
	}

	return false
}

// DiscountedProduct pairs a product with its flash-sale price.
type DiscountedProduct struct {
	Product         *Product
	OriginalPrice   float64
	DiscountedPrice float64
}

// ApplyDiscount prices p under the sale. ok is false when the discount would not
// lower the price, which filters out zero and negative discounts.
func (f *FlashSale) ApplyDiscount(p *Product) (dp DiscountedProduct, ok bool) {
	discounted := f.DiscountedPrice(p.Price)
	if discounted >= p.Price {
		return DiscountedProduct{}, false
	}

	return DiscountedProduct{
		Product:         p,
		OriginalPrice:   p.Price,
		DiscountedPrice: discounted,
	}, true
}
