// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gadgetshop/internal/delivery/api/middleware"
	"gadgetshop/internal/delivery/api/router/handler"
	"gadgetshop/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler    *handler.CatalogHandler
	ProductHandler    *handler.ProductHandler
	UserHandler       *handler.UserHandler
	CollectionHandler *handler.CollectionHandler
	OrderHandler      *handler.OrderHandler
	FlashSaleHandler  *handler.FlashSaleHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler    *handler.CatalogHandler
	productHandler    *handler.ProductHandler
	userHandler       *handler.UserHandler
	collectionHandler *handler.CollectionHandler
	orderHandler      *handler.OrderHandler
	flashSaleHandler  *handler.FlashSaleHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:    params.CatalogHandler,
		productHandler:    params.ProductHandler,
		userHandler:       params.UserHandler,
		collectionHandler: params.CollectionHandler,
		orderHandler:      params.OrderHandler,
		flashSaleHandler:  params.FlashSaleHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authenticate := r.authMiddleware.Authenticate
	sellerOrAdmin := r.authMiddleware.RequireRole(entity.RoleSeller, entity.RoleAdmin)
	adminOnly := r.authMiddleware.RequireRole(entity.RoleAdmin)

	e.GET("/", handler.Root)
	e.GET("/health", handler.HealthCheck)

	// Public catalog
	e.GET("/all-product", r.catalogHandler.ListProducts)
	e.GET("/all-product/:id", r.productHandler.GetProduct)
	e.GET("/flash-sale", r.catalogHandler.GetFlashSaleProducts)

	// Accounts
	e.POST("/jsonwebtoken", r.userHandler.IssueToken)
	e.POST("/user", r.userHandler.RegisterUser)
	e.GET("/user/:email", r.userHandler.GetUser, authenticate)
	e.PATCH("/users/:email/role", r.userHandler.UpdateRole, authenticate, adminOnly)

	// Product management
	e.POST("/add-product", r.productHandler.CreateProduct, authenticate, sellerOrAdmin)
	e.PUT("/update-product/:id", r.productHandler.UpdateProduct, authenticate, sellerOrAdmin)
	e.DELETE("/delete-product/:id", r.productHandler.DeleteProduct, authenticate, sellerOrAdmin)
	e.GET("/manage-products/:email", r.productHandler.ListOwnedProducts, authenticate)

	// Wishlist and cart
	e.PATCH("/add-wishlist", r.collectionHandler.AddTo(entity.SavedListWishlist), authenticate)
	e.PATCH("/remove-wishlist", r.collectionHandler.RemoveFrom(entity.SavedListWishlist), authenticate)
	e.GET("/wishlist/:userId", r.collectionHandler.List(entity.SavedListWishlist), authenticate)
	e.PATCH("/add-cart", r.collectionHandler.AddTo(entity.SavedListCart), authenticate)
	e.PATCH("/remove-cart", r.collectionHandler.RemoveFrom(entity.SavedListCart), authenticate)
	e.GET("/cart/:userId", r.collectionHandler.List(entity.SavedListCart), authenticate)

	// Orders
	e.POST("/purchase", r.orderHandler.Purchase, authenticate)
	e.GET("/my-order/:id", r.orderHandler.ListOrders, authenticate)

	// Flash sale administration
	e.POST("/flash-sale", r.flashSaleHandler.CreateFlashSale, authenticate, adminOnly)
	e.PATCH("/flash-sale/:id/schedule", r.flashSaleHandler.Reschedule, authenticate, adminOnly)
}
