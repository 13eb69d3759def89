package context

import (
	"context"
	"log/slog"

	"gadgetshop/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

const (
	// KeyActor is the key for storing the authenticated user in echo.Context.
	KeyActor ContextKey = "actor"

	// KeyActorEmail is the key for storing the token email in context.Context.
	KeyActorEmail ContextKey = "actor_email"
)

// SetActor stores the authenticated user in echo.Context and its email on the request context.
// A request-scoped logger, when present, is tagged with the user id.
func SetActor(c echo.Context, user *entity.User) {
	c.Set(string(KeyActor), user)

	ctx := WithActorEmail(c.Request().Context(), user.Email)
	if logger := GetLogger(ctx); logger != nil {
		ctx = WithLogger(ctx, logger.With(slog.String("user_id", user.ID)))
	}
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetActor returns the authenticated user, or nil on public routes.
func GetActor(c echo.Context) *entity.User {
	if user, ok := c.Get(string(KeyActor)).(*entity.User); ok {
		return user
	}

	return nil
}

// WithActorEmail returns a new context carrying the authenticated email.
func WithActorEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, KeyActorEmail, email)
}

// GetActorEmail returns the authenticated email, or empty string.
func GetActorEmail(ctx context.Context) string {
	if email, ok := ctx.Value(KeyActorEmail).(string); ok {
		return email
	}

	return ""
}
