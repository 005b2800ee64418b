// Package http hosts the development stub backend server.
package http

import (
	"context"
	"log/slog"
	"net"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"

	"cinvoluntario/config"
	"cinvoluntario/internal/delivery"
	"cinvoluntario/internal/delivery/http/router"
	"cinvoluntario/internal/errors"
)

// shutdownTimeout bounds graceful shutdown on stop.
const shutdownTimeout = 10 * time.Second

const defaultStubPort = 8000

type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config       *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// NewServer builds the echo server hosting the stub API.
func NewServer(params HTTPParams) (delivery.Delivery, error) {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Use(slogecho.New(params.Logger))
	echoServer.Use(echomiddleware.Recover())
	echoServer.Use(echomiddleware.CORS())

	if stub := params.Config.Stub; stub != nil {
		echoServer.Server.ReadTimeout = stub.Timeouts.ReadTimeout
		echoServer.Server.ReadHeaderTimeout = stub.Timeouts.ReadHeaderTimeout
		echoServer.Server.WriteTimeout = stub.Timeouts.WriteTimeout
		echoServer.Server.IdleTimeout = stub.Timeouts.IdleTimeout
	}

	router.NewRouter(params.RouterParams).RegisterRoutes(echoServer)

	srv := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
	}

	params.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func (s *httpServer) Serve(ctx context.Context) error {
	port := defaultStubPort
	if s.cfg.Stub != nil && s.cfg.Stub.Port != 0 {
		port = s.cfg.Stub.Port
	}

	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(port))
	s.logger.Info("starting stub backend", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil {
		return errors.Wrap(err, "failed to serve http")
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	s.logger.Info("shutting down stub backend")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
