package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/TimDev9492/chad-website/config"
	"github.com/TimDev9492/chad-website/internal/domain/entity"
	domainerrors "github.com/TimDev9492/chad-website/internal/domain/errors"
	mockUsecase "github.com/TimDev9492/chad-website/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "webhook-secret"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestWebhookHandler(t *testing.T, secret string) (*WebhookHandler, *mockUsecase.MockWebhookUsecase) {
	t.Helper()

	webhookUC := mockUsecase.NewMockWebhookUsecase(t)
	h := NewWebhookHandler(WebhookHandlerParams{
		WebhookUC: webhookUC,
		Config: &config.Config{Webhook: &config.WebhookConfig{
			Secret:                secret,
			HMACMessageHeaderName: "x-supabase-hmac-message",
			SignatureHeaderName:   "x-supabase-signature",
		}},
		Logger: newDiscardLogger(),
	})

	return h, webhookUC
}

func signedRequest(method, body, message, signature string) *http.Request {
	req := httptest.NewRequest(method, "/webhook", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if message != "" {
		req.Header.Set("x-supabase-hmac-message", message)
	}
	if signature != "" {
		req.Header.Set("x-supabase-signature", signature)
	}

	return req
}

func decodeFunctionResponse(t *testing.T, rec *httptest.ResponseRecorder) FunctionResponse {
	t.Helper()

	var body FunctionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestWebhookHandler_Handle_Success(t *testing.T) {
	h, webhookUC := newTestWebhookHandler(t, testSecret)

	body := `{"type":"UPDATE","table":"payment_infos","schema":"public","record":{"user_id":"u"},"old_record":null}`
	webhookUC.EXPECT().
		Dispatch(mock.Anything, mock.MatchedBy(func(p *entity.WebhookPayload) bool {
			return p.DispatchKey() == "public.payment_infos" && p.Type == entity.WebhookEventType("UPDATE")
		})).
		Return("Payment confirmation sent", nil)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(signedRequest(http.MethodPost, body, "msg", Sign([]byte(testSecret), "msg")), rec)

	require.NoError(t, h.Handle(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeFunctionResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "Payment confirmation sent", resp.Message)
}

func TestWebhookHandler_Handle_Rejections(t *testing.T) {
	tests := []struct {
		name      string
		secret    string
		method    string
		body      string
		message   string
		signature string
		wantCode  int
	}{
		{
			name:     "method not allowed",
			secret:   testSecret,
			method:   http.MethodGet,
			wantCode: http.StatusMethodNotAllowed,
		},
		{
			name:     "missing signature headers",
			secret:   testSecret,
			method:   http.MethodPost,
			body:     `{}`,
			wantCode: http.StatusUnauthorized,
		},
		{
			name:      "wrong signature",
			secret:    testSecret,
			method:    http.MethodPost,
			body:      `{}`,
			message:   "msg",
			signature: Sign([]byte("other-secret"), "msg"),
			wantCode:  http.StatusUnauthorized,
		},
		{
			name:      "secret not configured",
			secret:    "",
			method:    http.MethodPost,
			body:      `{}`,
			message:   "msg",
			signature: Sign([]byte(""), "msg"),
			wantCode:  http.StatusUnauthorized,
		},
		{
			name:      "signature checked before parsing",
			secret:    testSecret,
			method:    http.MethodPost,
			body:      `not json`,
			message:   "msg",
			signature: "garbage",
			wantCode:  http.StatusUnauthorized,
		},
		{
			name:      "malformed body",
			secret:    testSecret,
			method:    http.MethodPost,
			body:      `not json`,
			message:   "msg",
			signature: Sign([]byte(testSecret), "msg"),
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestWebhookHandler(t, tt.secret)

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(signedRequest(tt.method, tt.body, tt.message, tt.signature), rec)

			require.NoError(t, h.Handle(c))
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.NotEmpty(t, decodeFunctionResponse(t, rec).Error)
		})
	}
}

func TestWebhookHandler_Handle_DispatchErrors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
	}{
		{
			name:        "app error keeps its status",
			err:         errors.WithStack(domainerrors.ErrUnsupportedTable.WithDetails("public.songs")),
			wantCode:    http.StatusBadRequest,
			wantMessage: "public.songs",
		},
		{
			name:        "server app error hides details",
			err:         errors.WithStack(domainerrors.ErrMailSendFailed.WithDetails("smtp 535 auth failed for relay.internal")),
			wantCode:    http.StatusInternalServerError,
			wantMessage: domainerrors.ErrMailSendFailed.Message(),
		},
		{
			name:        "unexpected error becomes 500",
			err:         errors.New("boom"),
			wantCode:    http.StatusInternalServerError,
			wantMessage: "Internal server error, please try again later",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, webhookUC := newTestWebhookHandler(t, testSecret)
			webhookUC.EXPECT().Dispatch(mock.Anything, mock.Anything).Return("", tt.err)

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(signedRequest(http.MethodPost, `{"type":"INSERT","table":"songs","schema":"public"}`, "m", Sign([]byte(testSecret), "m")), rec)

			require.NoError(t, h.Handle(c))
			assert.Equal(t, tt.wantCode, rec.Code)

			resp := decodeFunctionResponse(t, rec)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantMessage, resp.Message)
		})
	}
}

func TestSign(t *testing.T) {
	// HMAC-SHA256("key", "The quick brown fox jumps over the lazy dog"), base64 encoded
	assert.Equal(t, "97yD9DBThCSxMpjmqm+xQ+9NWaFJRhdZl0edvC0aPNg=", Sign([]byte("key"), "The quick brown fox jumps over the lazy dog"))
}
