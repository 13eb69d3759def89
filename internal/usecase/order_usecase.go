package usecase

import (
	"context"

	"gadgetshop/internal/domain/entity"
	"gadgetshop/internal/domain/service"
)

// PlaceOrderInput lists the products being bought.
type PlaceOrderInput struct {
	ProductIDs []string
}

// OrderUsecase defines the purchase operations.
type OrderUsecase interface {
	// PlaceOrder prices the products, persists an order for actor and announces it.
	PlaceOrder(ctx context.Context, actor *entity.User, input PlaceOrderInput) (*entity.Order, error)

	// ListUserOrders returns the orders of userID. Actor must be that user or an admin.
	ListUserOrders(ctx context.Context, actor *entity.User, userID string) ([]*entity.Order, error)
}

// FulfillmentUsecase reacts to placed orders outside the request path.
type FulfillmentUsecase interface {
	// HandleOrderPlaced removes the purchased products from the buyer's cart.
	HandleOrderPlaced(ctx context.Context, event *service.OrderPlacedEvent) error
}
