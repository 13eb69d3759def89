package handler

import (
	"log/slog"
	"net/http"

	"gadgetshop/internal/delivery/api/response"
	deliverycontext "gadgetshop/internal/delivery/context"
	"gadgetshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves the purchase routes
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// PurchaseRequest represents the request body for POST /purchase
type PurchaseRequest struct {
	ProductIDs []string `json:"productIds" validate:"required,min=1,max=100,dive,objectid"`
}

// Purchase handles POST /purchase
func (h *OrderHandler) Purchase(c echo.Context) error {
	var req PurchaseRequest
	if ok, err := bindAndValidate(c, &req, "purchase"); !ok {
		return err
	}

	order, err := h.orderUC.PlaceOrder(c.Request().Context(), deliverycontext.GetActor(c), usecase.PlaceOrderInput{
		ProductIDs: req.ProductIDs,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toOrderResponse(order))
}

// ListOrders handles GET /my-order/:id
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.orderUC.ListUserOrders(c.Request().Context(), deliverycontext.GetActor(c), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}

	return response.Success(c, http.StatusOK, out)
}
