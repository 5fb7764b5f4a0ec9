package middleware

import (
	"log/slog"
	"strings"

	"github.com/TimDev9492/chad-website/config"
	deliverycontext "github.com/TimDev9492/chad-website/internal/delivery/context"
	"github.com/TimDev9492/chad-website/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionMiddlewareParams holds dependencies for SessionMiddleware, injected by Fx.
type SessionMiddlewareParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// SessionMiddleware resolves the caller's session from the access token cookie or
// the Authorization header. Requests without a valid token continue anonymously.
type SessionMiddleware struct {
	sessionUC  usecase.SessionUsecase
	cookieName string
	logger     *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(params SessionMiddlewareParams) *SessionMiddleware {
	cookieName := "sb-access-token"
	if params.Config != nil && params.Config.Supabase != nil && params.Config.Supabase.AccessCookieName != "" {
		cookieName = params.Config.Supabase.AccessCookieName
	}

	return &SessionMiddleware{
		sessionUC:  params.SessionUC,
		cookieName: cookieName,
		logger:     params.Logger,
	}
}

// Resolve attaches the session to the echo context.
func (m *SessionMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := m.accessToken(c)
		if token == "" {
			return next(c)
		}

		state, err := m.sessionUC.Resolve(c.Request().Context(), token)
		if err != nil {
			deliverycontext.Logger(c.Request().Context(), m.logger).
				Debug("Ignoring invalid session", slog.Any("error", err))

			return next(c)
		}

		deliverycontext.SetSession(c, state)
		deliverycontext.SetAccessToken(c, token)

		return next(c)
	}
}

func (m *SessionMiddleware) accessToken(c echo.Context) string {
	if cookie, err := c.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
		return strings.TrimSpace(token)
	}

	return ""
}
