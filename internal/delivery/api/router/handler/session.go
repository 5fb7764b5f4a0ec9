package handler

import (
	"net/http"
	"time"

	"github.com/TimDev9492/chad-website/config"
	deliverycontext "github.com/TimDev9492/chad-website/internal/delivery/context"
	"github.com/TimDev9492/chad-website/internal/domain/constants"
	"github.com/TimDev9492/chad-website/internal/domain/entity"
	domainerrors "github.com/TimDev9492/chad-website/internal/domain/errors"
	"github.com/TimDev9492/chad-website/internal/errors"
	"github.com/TimDev9492/chad-website/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	codeVerifierCookieName = "sb-code-verifier"
	codeVerifierMaxAge     = 24 * time.Hour
	refreshTokenMaxAge     = 30 * 24 * time.Hour
)

// SessionCookies writes the auth cookies. All of them are http-only.
type SessionCookies struct {
	accessName  string
	refreshName string
	secure      bool
}

// NewSessionCookies is the constructor for SessionCookies.
func NewSessionCookies(cfg *config.Config) *SessionCookies {
	cookies := &SessionCookies{
		accessName:  "sb-access-token",
		refreshName: "sb-refresh-token",
		secure:      cfg.Env.Env == constants.EnvProduction,
	}
	if cfg.Supabase != nil {
		if cfg.Supabase.AccessCookieName != "" {
			cookies.accessName = cfg.Supabase.AccessCookieName
		}
		if cfg.Supabase.RefreshCookieName != "" {
			cookies.refreshName = cfg.Supabase.RefreshCookieName
		}
	}

	return cookies
}

// SetSession stores both tokens of a fresh session.
func (sc *SessionCookies) SetSession(c echo.Context, session *entity.Session) {
	accessMaxAge := time.Until(session.ExpiresAt)
	if session.ExpiresAt.IsZero() || accessMaxAge <= 0 {
		accessMaxAge = time.Hour
	}

	c.SetCookie(sc.cookie(sc.accessName, session.AccessToken, accessMaxAge))
	c.SetCookie(sc.cookie(sc.refreshName, session.RefreshToken, refreshTokenMaxAge))
}

// Clear removes the session tokens.
func (sc *SessionCookies) Clear(c echo.Context) {
	c.SetCookie(sc.expired(sc.accessName))
	c.SetCookie(sc.expired(sc.refreshName))
}

// SetCodeVerifier keeps the PKCE verifier until the emailed link comes back.
func (sc *SessionCookies) SetCodeVerifier(c echo.Context, verifier string) {
	c.SetCookie(sc.cookie(codeVerifierCookieName, verifier, codeVerifierMaxAge))
}

// TakeCodeVerifier returns the stored verifier and removes the cookie.
func (sc *SessionCookies) TakeCodeVerifier(c echo.Context) string {
	cookie, err := c.Cookie(codeVerifierCookieName)
	if err != nil {
		return ""
	}
	c.SetCookie(sc.expired(codeVerifierCookieName))

	return cookie.Value
}

func (sc *SessionCookies) cookie(name, value string, maxAge time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   sc.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (sc *SessionCookies) expired(name string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   sc.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// requireSession returns the caller's session or ErrUnauthorized.
func requireSession(c echo.Context) (*usecase.SessionState, error) {
	state := deliverycontext.GetSession(c)
	if state == nil || state.Claims == nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return state, nil
}

// requireProfile additionally needs the profile row, which carries the public id.
func requireProfile(c echo.Context) (*usecase.SessionState, error) {
	state, err := requireSession(c)
	if err != nil {
		return nil, err
	}
	if state.Profile == nil {
		return nil, errors.Wrap(domainerrors.ErrNotFound, "profile not loaded")
	}

	return state, nil
}
