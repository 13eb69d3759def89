package middleware

import (
	"log/slog"

	deliverycontext "gadgetshop/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// maxRequestIDLength bounds client supplied ids before they reach the logs.
const maxRequestIDLength = 128

// RequestIDMiddleware tags each request with an id and a logger carrying it.
// Both the API and the order worker mount it first after Recover.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{logger: logger}
}

// Process reuses a sane X-Request-Id from the caller or mints a uuid.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := inboundRequestID(c)

		deliverycontext.SetRequestID(c, id)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, id)

		req := c.Request()
		ctx := deliverycontext.WithRequestID(req.Context(), id)
		ctx = deliverycontext.WithLogger(ctx, m.logger.With(slog.String("request_id", id)))
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}

func inboundRequestID(c echo.Context) string {
	id := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
	if id == "" || len(id) > maxRequestIDLength {
		return uuid.NewString()
	}

	return id
}
