package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/TimDev9492/chad-website/config"
	deliverycontext "github.com/TimDev9492/chad-website/internal/delivery/context"
	domainerrors "github.com/TimDev9492/chad-website/internal/domain/errors"
	mockUsecase "github.com/TimDev9492/chad-website/internal/mocks/usecase"
	"github.com/TimDev9492/chad-website/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestSessionMiddleware(t *testing.T) (*SessionMiddleware, *mockUsecase.MockSessionUsecase) {
	t.Helper()

	sessionUC := mockUsecase.NewMockSessionUsecase(t)

	return NewSessionMiddleware(SessionMiddlewareParams{
		SessionUC: sessionUC,
		Config:    &config.Config{Supabase: &config.SupabaseConfig{AccessCookieName: "sb-access-token"}},
		Logger:    newDiscardLogger(),
	}), sessionUC
}

// runResolve executes the middleware and returns the session the next handler saw.
func runResolve(t *testing.T, m *SessionMiddleware, req *http.Request) (*usecase.SessionState, string) {
	t.Helper()

	var (
		seen  *usecase.SessionState
		token string
	)
	e := echo.New()
	c := e.NewContext(req, httptest.NewRecorder())
	handler := m.Resolve(func(c echo.Context) error {
		seen = deliverycontext.GetSession(c)
		token = deliverycontext.GetAccessToken(c)

		return nil
	})

	require.NoError(t, handler(c))

	return seen, token
}

func TestSessionMiddleware_Resolve_FromCookie(t *testing.T) {
	m, sessionUC := newTestSessionMiddleware(t)
	state := userSession(true, false)
	sessionUC.EXPECT().Resolve(mock.Anything, "cookie-token").Return(state, nil)

	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	req.AddCookie(&http.Cookie{Name: "sb-access-token", Value: "cookie-token"})

	seen, token := runResolve(t, m, req)
	assert.Same(t, state, seen)
	assert.Equal(t, "cookie-token", token)
}

func TestSessionMiddleware_Resolve_FromBearerHeader(t *testing.T) {
	m, sessionUC := newTestSessionMiddleware(t)
	state := userSession(false, false)
	sessionUC.EXPECT().Resolve(mock.Anything, "header-token").Return(state, nil)

	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer header-token")

	seen, token := runResolve(t, m, req)
	assert.Same(t, state, seen)
	assert.Equal(t, "header-token", token)
}

func TestSessionMiddleware_Resolve_Anonymous(t *testing.T) {
	m, _ := newTestSessionMiddleware(t)

	seen, token := runResolve(t, m, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Nil(t, seen)
	assert.Empty(t, token)
}

func TestSessionMiddleware_Resolve_InvalidTokenContinues(t *testing.T) {
	m, sessionUC := newTestSessionMiddleware(t)
	sessionUC.EXPECT().Resolve(mock.Anything, "expired").
		Return(nil, errors.WithStack(domainerrors.ErrUnauthorized))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sb-access-token", Value: "expired"})

	seen, token := runResolve(t, m, req)
	assert.Nil(t, seen)
	assert.Empty(t, token)
}
