package service

import (
	"context"
	"time"
)

// OrderPlacedEvent is published once an order has been persisted.
type OrderPlacedEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	OrderID    string    `json:"order_id"`
	UserID     string    `json:"user_id"`
	UserEmail  string    `json:"user_email"`
	ProductIDs []string  `json:"product_ids"`
	Total      float64   `json:"total"`
	PlacedAt   time.Time `json:"placed_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderPlaced publishes an order event for async processing
	PublishOrderPlaced(ctx context.Context, event *OrderPlacedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
