// Package middleware holds echo middleware shared by the API and worker servers.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"gadgetshop/config"
	deliverycontext "gadgetshop/internal/delivery/context"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// UseBase mounts the chain every server starts with: panic recovery, then
// request ids, then access logging. Order matters since the log line reads the id.
func UseBase(e *echo.Echo, cfg *config.Config, logger *slog.Logger) {
	e.Use(echomiddleware.Recover())
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
}

// LoggerMiddleware writes one access line per request. Outside debug mode
// only server failures are logged.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{logger: logger, debug: cfg.Env.Debug}
}

func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		// Render through the central error handler first so the logged status is final.
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		if status := c.Response().Status; m.debug || status >= http.StatusInternalServerError {
			m.logger.LogAttrs(c.Request().Context(), levelFor(status), "HTTP Request", accessAttrs(c, start, err)...)
		}

		return nil
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

func accessAttrs(c echo.Context, start time.Time, err error) []slog.Attr {
	req, res := c.Request(), c.Response()

	attrs := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Duration("latency", time.Since(start)),
		slog.Int64("bytes_out", res.Size),
		slog.String("remote_ip", c.RealIP()),
	}
	if q := req.URL.RawQuery; q != "" {
		attrs = append(attrs, slog.String("query", q))
	}
	if actor := deliverycontext.GetActorEmail(req.Context()); actor != "" {
		attrs = append(attrs, slog.String("actor", actor))
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	return attrs
}
