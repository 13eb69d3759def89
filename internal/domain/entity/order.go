package entity

import "time"

// OrderItem is a snapshot of one purchased product at checkout time.
type OrderItem struct {
	ProductID  string
	Name       string
	UnitPrice  float64
	Discounted bool // True when UnitPrice came from an active flash sale.
}

// Order is created once per purchase and never modified afterwards.
type Order struct {
	ID        string
	UserID    string
	UserEmail string
	Items     []OrderItem
	Total     float64
	CreatedAt time.Time
}

// ProductIDs returns the ids of the ordered products in item order.
func (o *Order) ProductIDs() []string {
	ids := make([]string, 0, len(o.Items))
	for _, item := range o.Items {
		ids = append(ids, item.ProductID)
	}

	return ids
}

// NewOrder builds an order for user from priced items and computes the total.
func NewOrder(user *User, items []OrderItem, now time.Time) *Order {
	var total float64
	for _, item := range items {
		total += item.UnitPrice
	}

	return &Order{
		UserID:    user.ID,
		UserEmail: user.Email,
		Items:     items,
		Total:     total,
		CreatedAt: now,
	}
}
