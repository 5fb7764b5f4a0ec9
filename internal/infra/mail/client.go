// Package mail sends transactional emails through an HTTP mail API.
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/TimDev9492/chad-website/config"
	"github.com/TimDev9492/chad-website/internal/domain/service"
	"github.com/TimDev9492/chad-website/internal/errors"
)

const requestTimeout = 10 * time.Second

// Client implements service.Mailer.
type Client struct {
	apiURL     string
	apiKey     string
	from       string
	replyTo    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient is the constructor for Client.
func NewClient(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	mc := cfg.Mail
	if mc == nil || mc.APIURL == "" || mc.APIKey == "" || mc.From == "" {
		return nil, errors.New("mail api url, api key and sender must be provided")
	}

	return &Client{
		apiURL:     strings.TrimRight(mc.APIURL, "/"),
		apiKey:     mc.APIKey,
		from:       mc.From,
		replyTo:    mc.ReplyTo,
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger,
	}, nil
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// SendPaymentConfirmation renders and sends the payment confirmation email.
func (c *Client) SendPaymentConfirmation(ctx context.Context, mail service.PaymentConfirmationMail) error {
	if mail.To == "" {
		return errors.New("recipient is required")
	}

	body := new(bytes.Buffer)
	if err := paymentConfirmationTemplate.Execute(body, mail); err != nil {
		return errors.Wrap(err, "failed to render payment confirmation")
	}

	return c.send(ctx, sendRequest{
		From:    c.from,
		To:      []string{mail.To},
		ReplyTo: c.replyTo,
		Subject: paymentConfirmationSubject,
		HTML:    body.String(),
	})
}

func (c *Client) send(ctx context.Context, msg sendRequest) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return errors.Wrap(err, "failed to encode mail")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "failed to create mail request")
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to send mail")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))

		return errors.Errorf("mail api returned status %d: %s", resp.StatusCode, string(respBody))
	}

	c.logger.InfoContext(ctx, "Mail sent",
		slog.String("subject", msg.Subject),
		slog.Int("recipients", len(msg.To)),
	)

	return nil
}
