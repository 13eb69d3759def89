package handler

import (
	"log/slog"
	"net/http"
	"time"

	"gadgetshop/internal/delivery/api/response"
	deliverycontext "gadgetshop/internal/delivery/context"
	"gadgetshop/internal/domain/entity"
	"gadgetshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	userUC usecase.UserUsecase
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// IssueTokenRequest represents the request body for POST /jsonwebtoken
type IssueTokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// TokenResponse carries a signed bearer token
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// RegisterUserRequest represents the request body for POST /user
type RegisterUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"max=100"`
	PhotoURL string `json:"photo" validate:"omitempty,url"`
	Role     string `json:"role" validate:"omitempty,role"`
}

// UpdateRoleRequest represents the request body for PATCH /users/:email/role
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,role"`
}

// IssueToken handles POST /jsonwebtoken
func (h *UserHandler) IssueToken(c echo.Context) error {
	var req IssueTokenRequest
	if ok, err := bindAndValidate(c, &req, "token request"); !ok {
		return err
	}

	out, err := h.authUC.IssueToken(c.Request().Context(), usecase.IssueTokenInput{Email: req.Email})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, TokenResponse{Token: out.Token, ExpiresAt: out.ExpiresAt})
}

// RegisterUser handles POST /user
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var req RegisterUserRequest
	if ok, err := bindAndValidate(c, &req, "registration"); !ok {
		return err
	}

	user, err := h.userUC.RegisterUser(c.Request().Context(), usecase.RegisterUserInput{
		Email:    req.Email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
		Role:     entity.Role(req.Role),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(user))
}

// GetUser handles GET /user/:email
func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.userUC.GetUser(c.Request().Context(), deliverycontext.GetActor(c), c.Param("email"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// UpdateRole handles PATCH /users/:email/role
func (h *UserHandler) UpdateRole(c echo.Context) error {
	var req UpdateRoleRequest
	if ok, err := bindAndValidate(c, &req, "role"); !ok {
		return err
	}

	user, err := h.userUC.UpdateRole(c.Request().Context(), deliverycontext.GetActor(c), c.Param("email"), entity.Role(req.Role))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}
