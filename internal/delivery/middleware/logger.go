package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/TimDev9492/chad-website/config"
	deliverycontext "github.com/TimDev9492/chad-website/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes one access log line per request when debug logging is on.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware is the constructor for LoggerMiddleware.
func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  cfg.Env.Debug,
	}
}

// Handle must run inside RequestIDMiddleware so the line carries the request id.
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.debug {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		m.logRequest(c, time.Since(start), err)

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, latency time.Duration, err error) {
	req := c.Request()

	attrs := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("path", req.URL.Path),
		slog.Int("status", c.Response().Status),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
	}
	if state := deliverycontext.GetSession(c); state != nil && state.Claims != nil {
		attrs = append(attrs, slog.String("user_id", state.Claims.UserID.String()))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	logger := deliverycontext.Logger(req.Context(), m.logger)
	logger.LogAttrs(req.Context(), statusLevel(c.Response().Status), "HTTP request", attrs...)
}

func statusLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
