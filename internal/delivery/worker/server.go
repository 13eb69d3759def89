// Package worker serves the Pub/Sub push endpoint of the order worker.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"gadgetshop/config"
	"gadgetshop/internal/delivery"
	"gadgetshop/internal/delivery/middleware"
	"gadgetshop/internal/delivery/worker/handler"
	"gadgetshop/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultWorkerPort = 8081

type workerServer struct {
	port   int
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer builds the order worker. It listens on worker.port, 8081 when unset.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &workerServer{
		port:   defaultWorkerPort,
		logger: params.Logger,
		server: newEcho(params.Cfg, params.Logger, params.PushHandler),
	}
	if w := params.Cfg.Worker; w != nil && w.Port != 0 {
		srv.port = w.Port
	}
	params.Lc.Append(fx.StopHook(srv.stop))

	return srv, nil
}

func newEcho(cfg *config.Config, logger *slog.Logger, pushHandler *handler.PushHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	middleware.UseBase(e, cfg, logger)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST("/push", pushHandler.HandlePush)

	return e
}

func (s *workerServer) Serve(_ context.Context) error {
	addr := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.port))
	s.logger.Info("Order worker listening", slog.String("addr", addr))

	if err := s.server.Start(addr); !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *workerServer) stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Order worker shutting down")

	return errors.WithStack(s.server.Shutdown(ctx))
}
