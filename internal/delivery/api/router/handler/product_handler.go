package handler

import (
	"log/slog"
	"net/http"

	"gadgetshop/internal/delivery/api/response"
	deliverycontext "gadgetshop/internal/delivery/context"
	"gadgetshop/internal/domain/entity"
	"gadgetshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler holds dependencies for product management handlers
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// CreateProductRequest represents the request body for listing a product
type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Category    string  `json:"category" validate:"required,max=100"`
	SubCategory string  `json:"sub_category" validate:"max=100"`
	Brand       string  `json:"brand" validate:"required,max=100"`
	Price       float64 `json:"price" validate:"gt=0"`
	Description string  `json:"description" validate:"max=5000"`
	ImageURL    string  `json:"image" validate:"omitempty,url"`
	Stock       int     `json:"stock" validate:"gte=0"`
}

// UpdateProductRequest represents a partial product update. Only these fields can change.
type UpdateProductRequest struct {
	Name        *string  `json:"name" validate:"omitempty,max=200"`
	Category    *string  `json:"category" validate:"omitempty,max=100"`
	SubCategory *string  `json:"sub_category" validate:"omitempty,max=100"`
	Brand       *string  `json:"brand" validate:"omitempty,max=100"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	Description *string  `json:"description" validate:"omitempty,max=5000"`
	ImageURL    *string  `json:"image" validate:"omitempty,url"`
	Stock       *int     `json:"stock" validate:"omitempty,gte=0"`
}

// GetProduct handles GET /all-product/:id
func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productUC.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product))
}

// CreateProduct handles POST /add-product
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest
	if ok, err := bindAndValidate(c, &req, "product"); !ok {
		return err
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), deliverycontext.GetActor(c), usecase.CreateProductInput{
		Name:        req.Name,
		Category:    req.Category,
		SubCategory: req.SubCategory,
		Brand:       req.Brand,
		Price:       req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Stock:       req.Stock,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toProductResponse(product))
}

// UpdateProduct handles PUT /update-product/:id
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	var req UpdateProductRequest
	if ok, err := bindAndValidate(c, &req, "product update"); !ok {
		return err
	}

	patch := &entity.ProductPatch{
		Name:        req.Name,
		Category:    req.Category,
		SubCategory: req.SubCategory,
		Brand:       req.Brand,
		Price:       req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Stock:       req.Stock,
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), deliverycontext.GetActor(c), c.Param("id"), patch)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product))
}

// DeleteProduct handles DELETE /delete-product/:id
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	if err := h.productUC.DeleteProduct(c.Request().Context(), deliverycontext.GetActor(c), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Product deleted successfully"})
}

// ListOwnedProducts handles GET /manage-products/:email
func (h *ProductHandler) ListOwnedProducts(c echo.Context) error {
	products, err := h.productUC.ListOwnedProducts(c.Request().Context(), deliverycontext.GetActor(c), c.Param("email"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponses(products))
}
