package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/TimDev9492/chad-website/internal/domain/entity"
	domainerrors "github.com/TimDev9492/chad-website/internal/domain/errors"
	mockUsecase "github.com/TimDev9492/chad-website/internal/mocks/usecase"
	"github.com/TimDev9492/chad-website/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAccountHandler(t *testing.T) (*AccountHandler, *mockUsecase.MockAccountUsecase) {
	t.Helper()

	accountUC := mockUsecase.NewMockAccountUsecase(t)

	return NewAccountHandler(AccountHandlerParams{
		AccountUC: accountUC,
		Cookies:   newTestCookies(),
		Logger:    newDiscardLogger(),
	}), accountUC
}

func testSession() *entity.Session {
	return &entity.Session{
		AccessToken:  "new-access",
		RefreshToken: "new-refresh",
		ExpiresAt:    time.Now().Add(time.Hour),
	}
}

func TestAccountHandler_SignIn(t *testing.T) {
	h, accountUC := createTestAccountHandler(t)
	accountUC.EXPECT().
		SignIn(mock.Anything, &usecase.SignInInput{Email: "anna@example.com", Password: "secret"}).
		Return(testSession(), nil)

	c, rec := newContext(formRequest(http.MethodPost, "/login", url.Values{
		"email":    {"anna@example.com"},
		"password": {"secret"},
	}))

	require.NoError(t, h.SignIn(c))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/user", rec.Header().Get(echo.HeaderLocation))

	access := findCookie(rec, "sb-access-token")
	require.NotNil(t, access)
	assert.Equal(t, "new-access", access.Value)
	assert.True(t, access.HttpOnly)
	require.NotNil(t, findCookie(rec, "sb-refresh-token"))
}

func TestAccountHandler_SignIn_InvalidCredentials(t *testing.T) {
	h, accountUC := createTestAccountHandler(t)
	accountUC.EXPECT().SignIn(mock.Anything, mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrInvalidCredentials))

	c, rec := newContext(formRequest(http.MethodPost, "/login", url.Values{"email": {"anna@example.com"}}))

	require.NoError(t, h.SignIn(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
	assert.Nil(t, findCookie(rec, "sb-access-token"))
}

func TestAccountHandler_SignUp_StoresVerifier(t *testing.T) {
	h, accountUC := createTestAccountHandler(t)
	accountUC.EXPECT().SignUp(mock.Anything, mock.Anything).Return("pkce-verifier", nil)

	c, rec := newContext(formRequest(http.MethodPost, "/register", url.Values{
		"email":    {"anna@example.com"},
		"password": {"secret"},
	}))

	require.NoError(t, h.SignUp(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	verifier := findCookie(rec, codeVerifierCookieName)
	require.NotNil(t, verifier)
	assert.Equal(t, "pkce-verifier", verifier.Value)
}

func TestAccountHandler_ExchangeCode(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		wantLocation string
	}{
		{name: "default target", query: "code=abc", wantLocation: "/user"},
		{name: "relative next", query: "code=abc&next=%2Fuser%2Fupdate-password", wantLocation: "/user/update-password"},
		{name: "absolute next ignored", query: "code=abc&next=https%3A%2F%2Fevil.example", wantLocation: "/user"},
		{name: "protocol relative next ignored", query: "code=abc&next=%2F%2Fevil.example", wantLocation: "/user"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, accountUC := createTestAccountHandler(t)
			accountUC.EXPECT().ExchangeCode(mock.Anything, "abc", "stored-verifier").Return(testSession(), nil)

			req := httptest.NewRequest(http.MethodGet, "/login/auth?"+tt.query, nil)
			req.AddCookie(&http.Cookie{Name: codeVerifierCookieName, Value: "stored-verifier"})
			c, rec := newContext(req)

			require.NoError(t, h.ExchangeCode(c))
			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get(echo.HeaderLocation))

			verifier := findCookie(rec, codeVerifierCookieName)
			require.NotNil(t, verifier)
			assert.Negative(t, verifier.MaxAge)
		})
	}
}

func TestAccountHandler_ExchangeCode_Failures(t *testing.T) {
	t.Run("missing code renders error", func(t *testing.T) {
		h, accountUC := createTestAccountHandler(t)
		accountUC.EXPECT().ExchangeCode(mock.Anything, "", "").
			Return(nil, errors.WithStack(domainerrors.ErrAuthCodeMissing))

		c, rec := newContext(httptest.NewRequest(http.MethodGet, "/login/auth", nil))

		require.NoError(t, h.ExchangeCode(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejected code redirects to error page", func(t *testing.T) {
		h, accountUC := createTestAccountHandler(t)
		accountUC.EXPECT().ExchangeCode(mock.Anything, "stale", "").
			Return(nil, errors.WithStack(domainerrors.ErrAuthServiceFailed))

		c, rec := newContext(httptest.NewRequest(http.MethodGet, "/login/auth?code=stale", nil))

		require.NoError(t, h.ExchangeCode(c))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login/auth/error", rec.Header().Get(echo.HeaderLocation))
	})
}

func TestAccountHandler_SignOut_ClearsCookiesOnUpstreamFailure(t *testing.T) {
	h, accountUC := createTestAccountHandler(t)
	accountUC.EXPECT().SignOut(mock.Anything, "access-token").Return(errors.New("upstream down"))

	c, rec := newContext(httptest.NewRequest(http.MethodPost, "/logout", nil))
	withSession(c, entity.RoleUser)

	require.NoError(t, h.SignOut(c))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))

	access := findCookie(rec, "sb-access-token")
	require.NotNil(t, access)
	assert.Negative(t, access.MaxAge)
}

func TestAccountHandler_UpdatePassword(t *testing.T) {
	t.Run("requires session", func(t *testing.T) {
		h, _ := createTestAccountHandler(t)
		c, _ := newContext(formRequest(http.MethodPost, "/user/update-password", url.Values{"password": {"new"}}))

		err := h.UpdatePassword(c)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})

	t.Run("updates with the session token", func(t *testing.T) {
		h, accountUC := createTestAccountHandler(t)
		accountUC.EXPECT().UpdatePassword(mock.Anything, "access-token", "new-secret").Return(nil)

		c, rec := newContext(formRequest(http.MethodPost, "/user/update-password", url.Values{"password": {"new-secret"}}))
		withSession(c, entity.RoleUser)

		require.NoError(t, h.UpdatePassword(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":true`)
	})
}

func TestSafeRedirectTarget(t *testing.T) {
	assert.Equal(t, "/user", safeRedirectTarget(""))
	assert.Equal(t, "/user", safeRedirectTarget("user"))
	assert.Equal(t, "/user", safeRedirectTarget(`/\evil.example`))
	assert.Equal(t, "/workshops", safeRedirectTarget("/workshops"))
}
