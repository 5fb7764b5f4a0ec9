package middleware

import (
	"log/slog"
	"net/http"

	"github.com/TimDev9492/chad-website/internal/delivery/api/response"
	deliverycontext "github.com/TimDev9492/chad-website/internal/delivery/context"
	domainerrors "github.com/TimDev9492/chad-website/internal/domain/errors"
	"github.com/TimDev9492/chad-website/internal/infra/sentry"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ErrorMiddlewareParams holds dependencies for ErrorMiddleware, injected by Fx.
type ErrorMiddlewareParams struct {
	fx.In

	Logger   *slog.Logger
	Reporter *sentry.Reporter `optional:"true"`
}

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger   *slog.Logger
	reporter *sentry.Reporter
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(params ErrorMiddlewareParams) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger:   params.Logger,
		reporter: params.Reporter,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.Logger(c.Request().Context(), m.logger)

	// Attempt to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.Any("error", err),
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
			)
			m.report(c, err)
		}

		// Details are dropped by response.Error for 401, 403 and 5xx
		var details any
		if d := appErr.Details(); d != "" {
			details = d
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)

		return
	}

	// Check if it is an Echo HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	// Default to internal error, log the error but return a generic message (do not expose internal details)
	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
	m.report(c, err)

	_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
}

func (m *ErrorMiddleware) report(c echo.Context, err error) {
	hub := sentryecho.GetHubFromContext(c)
	if hub != nil && m.reporter.Enabled() {
		hub.Scope().SetTag("request_id", deliverycontext.RequestID(c))
	}
	m.reporter.Capture(hub, err)
}
