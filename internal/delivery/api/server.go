// Package api serves the icebreaker JSON API over HTTP.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"icebreaker/config"
	"icebreaker/internal/delivery"
	apimiddleware "icebreaker/internal/delivery/api/middleware"
	"icebreaker/internal/delivery/api/router"
	deliverycontext "icebreaker/internal/delivery/context"
	"icebreaker/internal/delivery/middleware"
	"icebreaker/internal/domain/lifecycle"
	"icebreaker/internal/validation"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

const listenHost = "0.0.0.0"

type apiServer struct {
	addr        string
	idleTimeout time.Duration
	logger      *slog.Logger
	echo        *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	Validator    *validation.Validator
	RouterParams router.RouterParams
}

// NewServer builds the API delivery and registers its graceful stop.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &apiServer{
		addr:        net.JoinHostPort(listenHost, strconv.Itoa(params.Cfg.HTTP.Port)),
		idleTimeout: params.Cfg.HTTP.Timeouts.IdleTimeout,
		logger:      params.Logger,
		echo:        NewEcho(params.Cfg, params.Logger, params.Validator, params.RouterParams),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// NewEcho assembles the middleware chain, error handler, validator and routes.
//
// Order matters: Recover catches panics from everything after it, and the request id
// middleware runs before the access log so every log line carries the id.
func NewEcho(cfg *config.Config, logger *slog.Logger, v *validation.Validator, routes router.RouterParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:  []string{"*"},
		AllowHeaders:  []string{echo.HeaderContentType, echo.HeaderAccept, deliverycontext.HeaderXRequestID, deliverycontext.HeaderXTimezone},
		ExposeHeaders: []string{deliverycontext.HeaderXRequestID},
	}))
	e.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = v

	router.NewRouter(routes).RegisterRoutes(e)

	return e
}

// Serve listens with h2c so clients may speak HTTP/2 without TLS.
func (s *apiServer) Serve(ctx context.Context) error {
	s.logger.Info("Starting API HTTP server", slog.String("host_port", s.addr))

	h2Server := &http2.Server{
		IdleTimeout: s.idleTimeout,
	}
	if err := s.echo.StartH2CServer(s.addr, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down API HTTP server")

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}
