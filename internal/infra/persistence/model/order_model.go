package model

import (
	"time"

	"gadgetshop/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderCollection is the collection holding order documents.
const OrderCollection = "orders"

// OrderItemModel is an embedded line of an order document.
type OrderItemModel struct {
	ProductID  string  `bson:"productId"`
	Name       string  `bson:"name"`
	UnitPrice  float64 `bson:"price"`
	Discounted bool    `bson:"discounted"`
}

// OrderModel mirrors a document of the 'orders' collection.
type OrderModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"userId"`
	UserEmail string             `bson:"email"`
	Items     []OrderItemModel   `bson:"items"`
	Total     float64            `bson:"total"`
	CreatedAt time.Time          `bson:"createdAt"`
}

// ToOrderDomain converts a stored document into the domain entity.
func ToOrderDomain(m *OrderModel) *entity.Order {
	if m == nil {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(m.Items))
	for _, item := range m.Items {
		items = append(items, entity.OrderItem{
			ProductID:  item.ProductID,
			Name:       item.Name,
			UnitPrice:  item.UnitPrice,
			Discounted: item.Discounted,
		})
	}

	return &entity.Order{
		ID:        m.ID.Hex(),
		UserID:    m.UserID,
		UserEmail: m.UserEmail,
		Items:     items,
		Total:     m.Total,
		CreatedAt: m.CreatedAt,
	}
}

// FromOrderDomain converts the entity into a document.
func FromOrderDomain(o *entity.Order) *OrderModel {
	items := make([]OrderItemModel, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemModel{
			ProductID:  item.ProductID,
			Name:       item.Name,
			UnitPrice:  item.UnitPrice,
			Discounted: item.Discounted,
		})
	}

	m := &OrderModel{
		UserID:    o.UserID,
		UserEmail: o.UserEmail,
		Items:     items,
		Total:     o.Total,
		CreatedAt: o.CreatedAt,
	}
	if oid, err := primitive.ObjectIDFromHex(o.ID); err == nil {
		m.ID = oid
	}

	return m
}
