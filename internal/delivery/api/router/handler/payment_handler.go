package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/TimDev9492/chad-website/internal/delivery/api/response"
	domainerrors "github.com/TimDev9492/chad-website/internal/domain/errors"
	"github.com/TimDev9492/chad-website/internal/errors"
	"github.com/TimDev9492/chad-website/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
	Logger    *slog.Logger
}

// PaymentHandler serves the attendee payment page and the admin confirmation.
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
	logger    *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler.
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: params.PaymentUC,
		logger:    params.Logger,
	}
}

// GetOverview handles GET /user/payments.
func (h *PaymentHandler) GetOverview(c echo.Context) error {
	state, err := requireSession(c)
	if err != nil {
		return err
	}

	overview, err := h.paymentUC.GetOverview(c.Request().Context(), state.Claims.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, overview)
}

// ReportTransfer handles POST /user/payments.
func (h *PaymentHandler) ReportTransfer(c echo.Context) error {
	state, err := requireSession(c)
	if err != nil {
		return err
	}

	if err := h.paymentUC.ReportTransfer(c.Request().Context(), state.Claims.UserID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Danke! Wir prüfen deine Überweisung.")
}

// PaymentQR handles GET /user/payments/qr.
func (h *PaymentHandler) PaymentQR(c echo.Context) error {
	state, err := requireSession(c)
	if err != nil {
		return err
	}

	png, err := h.paymentUC.PaymentQR(c.Request().Context(), state.Claims.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return c.Blob(http.StatusOK, "image/png", png)
}

// ConfirmPayment handles POST /admin/confirm-payment.
func (h *PaymentHandler) ConfirmPayment(c echo.Context) error {
	state, err := requireSession(c)
	if err != nil {
		return err
	}
	if !state.IsAdmin() {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	email, err := h.paymentUC.ConfirmPayment(c.Request().Context(), c.FormValue("payment_reference"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, fmt.Sprintf("Zahlung von %s wurde bestätigt.", email))
}
