// Package handler contains the serverless-style function endpoints.
package handler

import (
	"log/slog"
	"net/http"

	domainerrors "github.com/TimDev9492/chad-website/internal/domain/errors"
	"github.com/TimDev9492/chad-website/internal/errors"

	"github.com/labstack/echo/v4"
)

// FunctionResponse is the body every function answers with.
type FunctionResponse struct {
	Success bool   `json:"success,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message"`
}

func respondMessage(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, FunctionResponse{Success: true, Message: message})
}

// respondError renders AppErrors with their status; anything else becomes a 500
// without internal details.
func respondError(c echo.Context, logger *slog.Logger, err error) error {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		logger.Error("Function failed", slog.Any("error", err))

		return c.JSON(http.StatusInternalServerError, FunctionResponse{
			Error:   "Internal server error",
			Message: "Internal server error, please try again later",
		})
	}

	// Server-side failures only carry their fixed message; details stay in the log.
	message := appErr.Message()
	if appErr.HTTPCode() >= http.StatusInternalServerError {
		logger.Error("Function failed", slog.Any("error", err))
	} else {
		logger.Warn("Function rejected request", slog.Any("error", err))
		if details := appErr.Details(); details != "" {
			message = details
		}
	}

	return c.JSON(appErr.HTTPCode(), FunctionResponse{Error: appErr.Message(), Message: message})
}

func methodNotAllowed(c echo.Context) error {
	return c.JSON(http.StatusMethodNotAllowed, FunctionResponse{
		Error:   "Method not allowed",
		Message: "Only POST requests are supported",
	})
}
