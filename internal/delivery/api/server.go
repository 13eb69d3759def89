package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"gadgetshop/config"
	"gadgetshop/internal/delivery"
	apimiddleware "gadgetshop/internal/delivery/api/middleware"
	"gadgetshop/internal/delivery/api/router"
	"gadgetshop/internal/delivery/api/validator"
	"gadgetshop/internal/delivery/middleware"
	"gadgetshop/internal/domain/lifecycle"
	"gadgetshop/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer builds the shop API. Shutdown is driven by the fx stop hook.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: newEcho(params.Cfg, params.Logger, params.RouterParams),
	}
	params.Lc.Append(fx.StopHook(srv.stop))

	return srv, nil
}

func newEcho(cfg *config.Config, logger *slog.Logger, routerParams router.RouterParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	timeouts := cfg.HTTP.Timeouts
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	middleware.UseBase(e, cfg, logger)

	// Browsers call the shop from another origin. No list means any origin.
	cors := echomiddleware.DefaultCORSConfig
	if len(cfg.HTTP.CORSOrigins) > 0 {
		cors.AllowOrigins = cfg.HTTP.CORSOrigins
	}
	e.Use(echomiddleware.CORSWithConfig(cors))
	e.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))

	router.NewRouter(routerParams).RegisterRoutes(e)

	return e
}

// Serve speaks HTTP/1.1 and cleartext HTTP/2 on the configured port.
func (s *apiServer) Serve(_ context.Context) error {
	addr := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Shop API listening", slog.String("addr", addr))

	err := s.server.StartH2CServer(addr, &http2.Server{IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout})
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return errors.WithStack(err)
}

func (s *apiServer) stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shop API shutting down")

	return errors.WithStack(s.server.Shutdown(ctx))
}
