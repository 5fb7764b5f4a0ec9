package mail

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/TimDev9492/chad-website/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(serverURL string, httpClient *http.Client) *Client {
	return &Client{
		apiURL:     serverURL,
		apiKey:     "mail-key",
		from:       "CHAD <noreply@chad.example>",
		replyTo:    "orga@chad.example",
		httpClient: httpClient,
		logger:     newDiscardLogger(),
	}
}

func TestClient_SendPaymentConfirmation(t *testing.T) {
	var got sendRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer mail-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"id":"msg_1"}`))
	}))
	t.Cleanup(server.Close)

	err := newTestClient(server.URL, server.Client()).SendPaymentConfirmation(context.Background(), service.PaymentConfirmationMail{
		To:               "anna@example.com",
		FirstName:        "Anna <script>",
		PaymentReference: 1042,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"anna@example.com"}, got.To)
	assert.Equal(t, "orga@chad.example", got.ReplyTo)
	assert.Equal(t, paymentConfirmationSubject, got.Subject)
	assert.Contains(t, got.HTML, "1042")
	assert.Contains(t, got.HTML, "Anna &lt;script&gt;")
}

func TestClient_SendPaymentConfirmation_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"invalid from"}`))
	}))
	t.Cleanup(server.Close)

	err := newTestClient(server.URL, server.Client()).SendPaymentConfirmation(context.Background(), service.PaymentConfirmationMail{
		To: "anna@example.com",
	})

	assert.ErrorContains(t, err, "status 422")
}

func TestClient_SendPaymentConfirmation_RequiresRecipient(t *testing.T) {
	err := newTestClient("http://unused", http.DefaultClient).SendPaymentConfirmation(context.Background(), service.PaymentConfirmationMail{})
	assert.Error(t, err)
}
