// Package gotrue talks to the hosted GoTrue auth API that owns accounts, passwords and sessions.
package gotrue

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/TimDev9492/chad-website/config"
	"github.com/TimDev9492/chad-website/internal/domain/entity"
	"github.com/TimDev9492/chad-website/internal/domain/service"
	"github.com/TimDev9492/chad-website/internal/errors"

	"github.com/google/uuid"
)

const (
	authPath       = "/auth/v1"
	requestTimeout = 10 * time.Second
	maxErrorBody   = 4 << 10
)

// Client implements service.AuthService over the GoTrue REST API.
type Client struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
}

// NewClient creates a GoTrue client from the Supabase section of the config.
func NewClient(cfg *config.Config) (service.AuthService, error) {
	if cfg.Supabase == nil || cfg.Supabase.URL == "" || cfg.Supabase.AnonKey == "" {
		return nil, errors.New("supabase url and anon key must be provided")
	}

	return newClient(cfg.Supabase.URL, cfg.Supabase.AnonKey, &http.Client{Timeout: requestTimeout}), nil
}

func newClient(baseURL, anonKey string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/") + authPath,
		anonKey:    anonKey,
		httpClient: httpClient,
	}
}

type sessionResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	ExpiresAt    int64  `json:"expires_at"`
	User         struct {
		ID    uuid.UUID `json:"id"`
		Email string    `json:"email"`
	} `json:"user"`
}

func (r *sessionResponse) toSession() *entity.Session {
	expiresAt := time.Unix(r.ExpiresAt, 0)
	if r.ExpiresAt == 0 {
		expiresAt = time.Now().Add(time.Duration(r.ExpiresIn) * time.Second)
	}

	return &entity.Session{
		AccessToken:  r.AccessToken,
		RefreshToken: r.RefreshToken,
		ExpiresAt:    expiresAt,
		User:         entity.AuthUser{ID: r.User.ID, Email: r.User.Email},
	}
}

type userResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// SignInWithPassword exchanges email and password for a session.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*entity.Session, error) {
	var resp sessionResponse
	err := c.do(ctx, http.MethodPost, "/token", url.Values{"grant_type": {"password"}}, "", map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return nil, err
	}

	return resp.toSession(), nil
}

// SignUp creates the account; the confirmation link carries the PKCE code back to redirectTo.
func (c *Client) SignUp(ctx context.Context, email, password, redirectTo string, pkce service.PKCE) error {
	return c.do(ctx, http.MethodPost, "/signup", redirectQuery(redirectTo), "", map[string]string{
		"email":                 email,
		"password":              password,
		"code_challenge":        pkce.Challenge,
		"code_challenge_method": pkce.Method,
	}, nil)
}

// SignOut revokes the session behind the access token.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	return c.do(ctx, http.MethodPost, "/logout", nil, accessToken, nil, nil)
}

// GetUser returns the account the access token belongs to.
func (c *Client) GetUser(ctx context.Context, accessToken string) (*entity.AuthUser, error) {
	var resp userResponse
	if err := c.do(ctx, http.MethodGet, "/user", nil, accessToken, nil, &resp); err != nil {
		return nil, err
	}

	return &entity.AuthUser{ID: resp.ID, Email: resp.Email}, nil
}

// UpdateEmail starts the email change; the service mails a confirmation link to the new address.
func (c *Client) UpdateEmail(ctx context.Context, accessToken, email string) error {
	return c.do(ctx, http.MethodPut, "/user", nil, accessToken, map[string]string{"email": email}, nil)
}

func (c *Client) UpdatePassword(ctx context.Context, accessToken, password string) error {
	return c.do(ctx, http.MethodPut, "/user", nil, accessToken, map[string]string{"password": password}, nil)
}

// ResetPasswordForEmail mails a recovery link. The service answers 200 for unknown addresses too.
func (c *Client) ResetPasswordForEmail(ctx context.Context, email, redirectTo string, pkce service.PKCE) error {
	return c.do(ctx, http.MethodPost, "/recover", redirectQuery(redirectTo), "", map[string]string{
		"email":                 email,
		"code_challenge":        pkce.Challenge,
		"code_challenge_method": pkce.Method,
	}, nil)
}

// ResendSignup sends the sign up confirmation email again.
func (c *Client) ResendSignup(ctx context.Context, email, redirectTo string) error {
	return c.do(ctx, http.MethodPost, "/resend", redirectQuery(redirectTo), "", map[string]any{
		"type":  "signup",
		"email": email,
	}, nil)
}

// ExchangeCodeForSession completes a PKCE flow started by SignUp or ResetPasswordForEmail.
func (c *Client) ExchangeCodeForSession(ctx context.Context, authCode, codeVerifier string) (*entity.Session, error) {
	var resp sessionResponse
	err := c.do(ctx, http.MethodPost, "/token", url.Values{"grant_type": {"pkce"}}, "", map[string]string{
		"auth_code":     authCode,
		"code_verifier": codeVerifier,
	}, &resp)
	if err != nil {
		return nil, err
	}

	return resp.toSession(), nil
}

func redirectQuery(redirectTo string) url.Values {
	if redirectTo == "" {
		return nil
	}

	return url.Values{"redirect_to": {redirectTo}}
}

// do sends one request. 4xx answers map to ErrAuthRejected, transport failures and 5xx to ErrAuthUnavailable.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, accessToken string, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to encode auth request")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return errors.Wrap(err, "failed to create auth request")
	}

	bearer := c.anonKey
	if accessToken != "" {
		bearer = accessToken
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+bearer)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(service.ErrAuthUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return errors.Wrapf(service.ErrAuthUnavailable, "%s %s returned %d", method, path, resp.StatusCode)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return errors.Wrap(service.ErrAuthRejected, readErrorMessage(resp.Body))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode auth response")
	}

	return nil
}

// readErrorMessage picks the human readable part out of the different error shapes the API returns.
func readErrorMessage(r io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(r, maxErrorBody))

	var payload struct {
		Msg              string `json:"msg"`
		Message          string `json:"message"`
		ErrorDescription string `json:"error_description"`
		Error            string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return strings.TrimSpace(string(raw))
	}

	for _, candidate := range []string{payload.Msg, payload.Message, payload.ErrorDescription, payload.Error} {
		if candidate != "" {
			return candidate
		}
	}

	return strings.TrimSpace(string(raw))
}
