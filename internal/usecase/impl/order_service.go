package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "gadgetshop/internal/delivery/context"
	"gadgetshop/internal/domain/entity"
	domainerrors "gadgetshop/internal/domain/errors"
	"gadgetshop/internal/domain/repository"
	"gadgetshop/internal/domain/service"
	"gadgetshop/internal/errors"
	"gadgetshop/internal/usecase"

	"go.uber.org/fx"
)

type orderService struct {
	orderRepo     repository.OrderRepository
	productRepo   repository.ProductRepository
	flashSaleRepo repository.FlashSaleRepository
	userRepo      repository.UserRepository
	publisher     service.EventPublisher
	logger        *slog.Logger
	now           func() time.Time
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo      repository.OrderRepository
	ProductRepo    repository.ProductRepository
	FlashSaleRepo  repository.FlashSaleRepository
	UserRepo       repository.UserRepository
	EventPublisher service.EventPublisher `optional:"true"` // absent in the order worker
	Logger         *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return newOrderService(params)
}

// NewFulfillmentService creates the worker side of the order flow
func NewFulfillmentService(params OrderServiceParams) usecase.FulfillmentUsecase {
	return newOrderService(params)
}

func newOrderService(params OrderServiceParams) *orderService {
	return &orderService{
		orderRepo:     params.OrderRepo,
		productRepo:   params.ProductRepo,
		flashSaleRepo: params.FlashSaleRepo,
		userRepo:      params.UserRepo,
		publisher:     params.EventPublisher,
		logger:        params.Logger,
		now:           time.Now,
	}
}

// PlaceOrder prices the products, persists an order for actor and announces it.
func (s *orderService) PlaceOrder(ctx context.Context, actor *entity.User, input usecase.PlaceOrderInput) (*entity.Order, error) {
	if actor == nil {
		return nil, domainerrors.ErrUnauthorized
	}
	if len(input.ProductIDs) == 0 {
		return nil, domainerrors.ErrEmptyOrder
	}

	for _, id := range input.ProductIDs {
		if !entity.IsValidID(id) {
			return nil, domainerrors.ErrInvalidID.WithDetails(id)
		}
	}
	ids := entity.ValidIDs(input.ProductIDs)

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	now := s.now()

	products, err := s.productRepo.FindByIDs(ctx, ids, "")
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "find order products")
	}
	if missing := missingIDs(ids, products); len(missing) > 0 {
		return nil, domainerrors.ErrProductNotFound.WithDetails(missing[0])
	}

	sale, err := s.flashSaleRepo.FindActive(ctx, now)
	if err != nil && !errors.Is(err, repository.ErrFlashSaleNotFound) {
		return nil, domainerrors.NewDatabaseExecuteError(err, "find active flash sale")
	}

	order := entity.NewOrder(actor, priceItems(products, sale), now)
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "create order")
	}

	logger.Info("Order placed",
		slog.String("order_id", order.ID),
		slog.Int("items", len(order.Items)),
		slog.Float64("total", order.Total),
	)

	event := &service.OrderPlacedEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:    order.ID,
		UserID:     order.UserID,
		UserEmail:  order.UserEmail,
		ProductIDs: order.ProductIDs(),
		Total:      order.Total,
		PlacedAt:   order.CreatedAt,
	}
	if s.publisher == nil {
		return order, nil
	}
	if err := s.publisher.PublishOrderPlaced(ctx, event); err != nil {
		// Publish failures do not fail the purchase
		logger.Error("Failed to publish order event",
			slog.String("order_id", order.ID),
			slog.Any("error", err),
		)
	}

	return order, nil
}

// ListUserOrders returns the orders of userID. Actor must be that user or an admin.
func (s *orderService) ListUserOrders(ctx context.Context, actor *entity.User, userID string) ([]*entity.Order, error) {
	if !entity.IsValidID(userID) {
		return nil, domainerrors.ErrInvalidID.WithDetails(userID)
	}
	if err := requireSelfOrAdminByID(actor, userID); err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "find orders")
	}

	return orders, nil
}

// HandleOrderPlaced removes the purchased products from the buyer's cart.
// A buyer deleted since the purchase is not an error.
func (s *orderService) HandleOrderPlaced(ctx context.Context, event *service.OrderPlacedEvent) error {
	if event.UserEmail == "" {
		return domainerrors.ErrValidationFailed.WithDetails("event has no user email")
	}

	ids := entity.ValidIDs(event.ProductIDs)
	if len(ids) == 0 {
		return nil
	}

	modified, err := s.userRepo.RemoveFromList(ctx, event.UserEmail, entity.SavedListCart, ids...)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Order owner no longer exists",
				slog.String("order_id", event.OrderID),
			)

			return nil
		}

		return domainerrors.NewDatabaseExecuteError(err, "clear cart")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Cart cleared after purchase",
		slog.String("order_id", event.OrderID),
		slog.Bool("modified", modified),
	)

	return nil
}

// priceItems snapshots each product, using the flash-sale price when it is lower.
func priceItems(products []*entity.Product, sale *entity.FlashSale) []entity.OrderItem {
	items := make([]entity.OrderItem, 0, len(products))
	for _, p := range products {
		item := entity.OrderItem{ProductID: p.ID, Name: p.Name, UnitPrice: p.Price}
		if sale != nil && sale.Includes(p.ID) {
			if dp, ok := sale.ApplyDiscount(p); ok {
				item.UnitPrice = dp.DiscountedPrice
				item.Discounted = true
			}
		}
		items = append(items, item)
	}

	return items
}

func missingIDs(ids []string, products []*entity.Product) []string {
	found := make(map[string]struct{}, len(products))
	for _, p := range products {
		found[p.ID] = struct{}{}
	}

	var missing []string
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}

	return missing
}
