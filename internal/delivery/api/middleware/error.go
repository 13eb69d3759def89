// Package middleware holds the API-only echo middleware: authentication and error rendering.
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"gadgetshop/internal/delivery/api/response"
	deliverycontext "gadgetshop/internal/delivery/context"
	domainerrors "gadgetshop/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware is the echo HTTPErrorHandler for the API. Every error a
// handler returns ends up here, and only server failures are logged.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleHTTPError renders AppErrors with their own code, echo errors as
// HTTP_ERROR and anything else as an opaque INTERNAL_ERROR.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logError(c, err, appErr.ErrorCode())
		}

		var details any
		if appErr.Details() != "" {
			details = appErr.Details()
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	internal := domainerrors.ErrInternalError
	m.logError(c, err, internal.ErrorCode())
	_ = response.InternalServerError(c, internal.ErrorCode(), internal.Message()+", please try again later")
}

func (m *ErrorMiddleware) logError(c echo.Context, err error, code string) {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
	logger.Error("Unhandled error",
		slog.String("code", code),
		slog.String("error", err.Error()),
		slog.String("stack", stackOf(err)),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}

// stackOf renders the innermost pkg/errors stack trace, if any.
func stackOf(err error) string {
	type stackTracer interface {
		StackTrace() errors.StackTrace
	}

	var deepest stackTracer
	for e := err; e != nil; e = errors.Unwrap(e) {
		if st, ok := e.(stackTracer); ok {
			deepest = st
		}
	}
	if deepest == nil {
		return ""
	}

	trace := deepest.StackTrace()
	if len(trace) > 5 {
		trace = trace[:5]
	}

	return fmt.Sprintf("%+v", trace)
}
