package handler

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/TimDev9492/chad-website/config"
	deliverycontext "github.com/TimDev9492/chad-website/internal/delivery/context"
	"github.com/TimDev9492/chad-website/internal/domain/entity"
	domainerrors "github.com/TimDev9492/chad-website/internal/domain/errors"
	"github.com/TimDev9492/chad-website/internal/errors"
	"github.com/TimDev9492/chad-website/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WebhookHandlerParams holds dependencies for WebhookHandler, injected by Fx.
type WebhookHandlerParams struct {
	fx.In

	WebhookUC usecase.WebhookUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// WebhookHandler receives signed database change notifications.
type WebhookHandler struct {
	webhookUC       usecase.WebhookUsecase
	secret          []byte
	messageHeader   string
	signatureHeader string
	logger          *slog.Logger
}

// NewWebhookHandler is the constructor for WebhookHandler.
func NewWebhookHandler(params WebhookHandlerParams) *WebhookHandler {
	h := &WebhookHandler{
		webhookUC:       params.WebhookUC,
		messageHeader:   "x-supabase-hmac-message",
		signatureHeader: "x-supabase-signature",
		logger:          params.Logger,
	}

	if cfg := params.Config.Webhook; cfg != nil {
		h.secret = []byte(cfg.Secret)
		if cfg.HMACMessageHeaderName != "" {
			h.messageHeader = cfg.HMACMessageHeaderName
		}
		if cfg.SignatureHeaderName != "" {
			h.signatureHeader = cfg.SignatureHeaderName
		}
	}

	return h
}

// Handle verifies the signature, decodes the payload and dispatches it.
func (h *WebhookHandler) Handle(c echo.Context) error {
	logger := deliverycontext.Logger(c.Request().Context(), h.logger)

	if c.Request().Method != http.MethodPost {
		return methodNotAllowed(c)
	}

	if !h.verifySignature(c.Request().Header) {
		return respondError(c, logger, errors.WithStack(domainerrors.ErrInvalidSignature))
	}

	var payload entity.WebhookPayload
	if err := json.NewDecoder(c.Request().Body).Decode(&payload); err != nil {
		return respondError(c, logger, errors.Wrap(domainerrors.ErrInvalidWebhookPayload.WithDetails("request body is not valid JSON"), err.Error()))
	}

	message, err := h.webhookUC.Dispatch(c.Request().Context(), &payload)
	if err != nil {
		return respondError(c, logger, err)
	}

	return respondMessage(c, message)
}

// verifySignature checks base64(HMAC-SHA256(secret, message header)) against the
// signature header. Without a configured secret every request is rejected.
func (h *WebhookHandler) verifySignature(header http.Header) bool {
	message := header.Get(h.messageHeader)
	signature := header.Get(h.signatureHeader)
	if len(h.secret) == 0 || message == "" || signature == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(Sign(h.secret, message)), []byte(signature)) == 1
}

// Sign returns the signature a caller has to send for message.
func Sign(secret []byte, message string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(message))

	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
