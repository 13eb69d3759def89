package handler

import (
	"log/slog"
	"net/http"
	"time"

	"gadgetshop/internal/delivery/api/response"
	deliverycontext "gadgetshop/internal/delivery/context"
	"gadgetshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FlashSaleHandlerParams holds dependencies for FlashSaleHandler, injected by Fx.
type FlashSaleHandlerParams struct {
	fx.In

	FlashSaleUC usecase.FlashSaleUsecase
	Logger      *slog.Logger
}

// FlashSaleHandler serves the flash sale administration routes
type FlashSaleHandler struct {
	flashSaleUC usecase.FlashSaleUsecase
	logger      *slog.Logger
}

// NewFlashSaleHandler is the constructor for FlashSaleHandler
func NewFlashSaleHandler(params FlashSaleHandlerParams) *FlashSaleHandler {
	return &FlashSaleHandler{
		flashSaleUC: params.FlashSaleUC,
		logger:      params.Logger,
	}
}

// CreateFlashSaleRequest represents the request body for POST /flash-sale
type CreateFlashSaleRequest struct {
	Name       string    `json:"name" validate:"required,max=200"`
	ProductIDs []string  `json:"products" validate:"required,min=1,dive,objectid"`
	Discount   float64   `json:"discount" validate:"gt=0,lte=100"`
	StartTime  time.Time `json:"startTime" validate:"required"`
	EndTime    time.Time `json:"endTime" validate:"required"`
}

// RescheduleRequest represents the request body for PATCH /flash-sale/:id/schedule
type RescheduleRequest struct {
	StartTime time.Time `json:"startTime" validate:"required"`
	EndTime   time.Time `json:"endTime" validate:"required"`
}

// CreateFlashSale handles POST /flash-sale
func (h *FlashSaleHandler) CreateFlashSale(c echo.Context) error {
	var req CreateFlashSaleRequest
	if ok, err := bindAndValidate(c, &req, "flash sale"); !ok {
		return err
	}

	sale, err := h.flashSaleUC.CreateFlashSale(c.Request().Context(), deliverycontext.GetActor(c), usecase.CreateFlashSaleInput{
		Name:       req.Name,
		ProductIDs: req.ProductIDs,
		Discount:   req.Discount,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toFlashSaleResponse(sale))
}

// Reschedule handles PATCH /flash-sale/:id/schedule
func (h *FlashSaleHandler) Reschedule(c echo.Context) error {
	var req RescheduleRequest
	if ok, err := bindAndValidate(c, &req, "schedule"); !ok {
		return err
	}

	sale, err := h.flashSaleUC.Reschedule(c.Request().Context(), deliverycontext.GetActor(c), c.Param("id"), req.StartTime, req.EndTime)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toFlashSaleResponse(sale))
}
