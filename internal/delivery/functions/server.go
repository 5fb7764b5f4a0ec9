// Package functions serves the webhook and export endpoints on their own port.
package functions

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/TimDev9492/chad-website/config"
	"github.com/TimDev9492/chad-website/internal/delivery"
	"github.com/TimDev9492/chad-website/internal/delivery/functions/handler"
	"github.com/TimDev9492/chad-website/internal/delivery/middleware"
	"github.com/TimDev9492/chad-website/internal/domain/lifecycle"
	"github.com/TimDev9492/chad-website/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

type functionsServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the functions server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc             fx.Lifecycle
	Cfg            *config.Config
	Logger         *slog.Logger
	WebhookHandler *handler.WebhookHandler
	ExportHandler  *handler.ExportHandler
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Server.ReadTimeout = params.Cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.WriteTimeout = params.Cfg.HTTP.Timeouts.WriteTimeout

	echoServer.Use(echomiddleware.Recover())
	echoServer.Use(middleware.NewRequestIDMiddleware(params.Logger).Process)
	echoServer.Use(middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle)
	echoServer.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{"*"},
		AllowMethods: []string{http.MethodPost, http.MethodOptions},
	}))

	echoServer.HTTPErrorHandler = jsonErrorHandler(params.Logger)

	RegisterRoutes(echoServer, params.WebhookHandler, params.ExportHandler)

	srv := &functionsServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: echoServer,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// RegisterRoutes accepts every method so the handlers can answer 405 themselves.
func RegisterRoutes(e *echo.Echo, webhook *handler.WebhookHandler, export *handler.ExportHandler) {
	e.Any("/", webhook.Handle)
	e.Any("/webhook", webhook.Handle)
	e.Any("/export", export.Handle)
	e.Any("/create-participant-excel", export.Handle)
}

func jsonErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := "Internal server error"

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			code = httpErr.Code
			message = http.StatusText(code)
		} else {
			logger.Error("Unhandled function error", slog.Any("error", err))
		}

		if writeErr := c.JSON(code, handler.FunctionResponse{Error: message, Message: message}); writeErr != nil {
			logger.Error("Failed to write error response", slog.Any("error", writeErr))
		}
	}
}

func (s *functionsServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.FunctionsPort))
	s.logger.Info("Starting functions HTTP server", slog.String("host_port", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *functionsServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down functions HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
