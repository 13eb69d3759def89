package middleware

import (
	"strings"

	"gadgetshop/internal/delivery/api/response"
	deliverycontext "gadgetshop/internal/delivery/context"
	"gadgetshop/internal/domain/entity"
	"gadgetshop/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for bearer token authentication and role checks.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate resolves the bearer token to a registered user and stores it as the actor.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, ok := strings.CutPrefix(authHeader, bearerPrefix)
		if !ok || strings.TrimSpace(tokenString) == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		user, err := m.authUC.Authenticate(c.Request().Context(), strings.TrimSpace(tokenString))
		if err != nil {
			return err
		}

		deliverycontext.SetActor(c, user)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the actor holds one of roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, role.String())
	}
	denied := "Permission denied: requires role " + strings.Join(names, " or ")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor := deliverycontext.GetActor(c)
			if actor == nil {
				return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
			}

			if !actor.HasRole(roles...) {
				return response.Forbidden(c, "FORBIDDEN", denied)
			}

			return next(c)
		}
	}
}
