package handler

import (
	"log/slog"
	"net/http"

	"gadgetshop/internal/delivery/api/response"
	"gadgetshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves the public product listings
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ListProductsRequest holds the catalog query parameters.
// Title is the older name of Search and is used only when Search is empty.
type ListProductsRequest struct {
	Search      string `query:"search"`
	Title       string `query:"title"`
	Category    string `query:"category"`
	SubCategory string `query:"sub_category"`
	Brand       string `query:"brand"`
	Sort        string `query:"sort" validate:"omitempty,oneof=asc desc"`
	Page        int    `query:"page" validate:"gte=0"`
	Limit       int    `query:"limit" validate:"gte=0"`
}

// FlashSaleProductsRequest holds the flash-sale listing query parameters.
type FlashSaleProductsRequest struct {
	Search string `query:"search"`
	Page   int    `query:"page" validate:"gte=0"`
	Limit  int    `query:"limit" validate:"gte=0"`
}

// ListProducts handles GET /all-product
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	var req ListProductsRequest
	if ok, err := bindAndValidate(c, &req, "catalog query"); !ok {
		return err
	}

	search := req.Search
	if search == "" {
		search = req.Title
	}

	out, err := h.catalogUC.ListProducts(c.Request().Context(), usecase.ListProductsInput{
		Search:      search,
		Category:    req.Category,
		SubCategory: req.SubCategory,
		Brand:       req.Brand,
		Sort:        req.Sort,
		Page:        req.Page,
		Limit:       req.Limit,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ProductListResponse{
		Products:      toProductResponses(out.Products),
		Brands:        nonNil(out.Brands),
		Categories:    nonNil(out.Categories),
		TotalProducts: out.TotalProducts,
		Page:          out.Page,
		Limit:         out.Limit,
	})
}

// GetFlashSaleProducts handles GET /flash-sale
func (h *CatalogHandler) GetFlashSaleProducts(c echo.Context) error {
	var req FlashSaleProductsRequest
	if ok, err := bindAndValidate(c, &req, "flash sale query"); !ok {
		return err
	}

	out, err := h.catalogUC.GetFlashSaleProducts(c.Request().Context(), usecase.FlashSaleProductsInput{
		Search: req.Search,
		Page:   req.Page,
		Limit:  req.Limit,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toFlashSaleProductsResponse(out))
}
