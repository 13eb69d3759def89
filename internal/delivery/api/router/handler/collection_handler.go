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

// CollectionHandlerParams holds dependencies for CollectionHandler, injected by Fx.
type CollectionHandlerParams struct {
	fx.In

	CollectionUC usecase.CollectionUsecase
	Logger       *slog.Logger
}

// CollectionHandler serves the wishlist and cart routes
type CollectionHandler struct {
	collectionUC usecase.CollectionUsecase
	logger       *slog.Logger
}

// NewCollectionHandler is the constructor for CollectionHandler
func NewCollectionHandler(params CollectionHandlerParams) *CollectionHandler {
	return &CollectionHandler{
		collectionUC: params.CollectionUC,
		logger:       params.Logger,
	}
}

// UpdateListRequest represents the request body of the wishlist and cart mutations.
// UserEmail defaults to the caller.
type UpdateListRequest struct {
	UserEmail string `json:"userEmail" validate:"omitempty,email"`
	ProductID string `json:"productId" validate:"required,objectid"`
}

// AddTo returns the handler adding a product to list
func (h *CollectionHandler) AddTo(list entity.SavedList) echo.HandlerFunc {
	return func(c echo.Context) error {
		input, ok, err := h.bindUpdate(c, list)
		if !ok {
			return err
		}

		modified, err := h.collectionUC.AddToList(c.Request().Context(), deliverycontext.GetActor(c), input)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, ModifiedResponse{Modified: modified})
	}
}

// RemoveFrom returns the handler removing a product from list
func (h *CollectionHandler) RemoveFrom(list entity.SavedList) echo.HandlerFunc {
	return func(c echo.Context) error {
		input, ok, err := h.bindUpdate(c, list)
		if !ok {
			return err
		}

		modified, err := h.collectionUC.RemoveFromList(c.Request().Context(), deliverycontext.GetActor(c), input)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, ModifiedResponse{Modified: modified})
	}
}

// List returns the handler resolving list of the :userId path parameter to products
func (h *CollectionHandler) List(list entity.SavedList) echo.HandlerFunc {
	return func(c echo.Context) error {
		products, err := h.collectionUC.GetListProducts(c.Request().Context(), deliverycontext.GetActor(c), c.Param("userId"), list)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, toProductResponses(products))
	}
}

func (h *CollectionHandler) bindUpdate(c echo.Context, list entity.SavedList) (usecase.UpdateListInput, bool, error) {
	var req UpdateListRequest
	if ok, err := bindAndValidate(c, &req, list.String()); !ok {
		return usecase.UpdateListInput{}, false, err
	}

	return usecase.UpdateListInput{
		List:      list,
		UserEmail: req.UserEmail,
		ProductID: req.ProductID,
	}, true, nil
}
