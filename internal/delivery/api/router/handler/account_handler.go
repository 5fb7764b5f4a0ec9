package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/TimDev9492/chad-website/internal/delivery/api/response"
	deliverycontext "github.com/TimDev9492/chad-website/internal/delivery/context"
	"github.com/TimDev9492/chad-website/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	pathAfterLogin    = "/user"
	pathAfterLogout   = "/login"
	pathAuthCodeError = "/login/auth/error"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Cookies   *SessionCookies
	Logger    *slog.Logger
}

// AccountHandler serves sign in, sign up and the account settings forms.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	cookies   *SessionCookies
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler.
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		cookies:   params.Cookies,
		logger:    params.Logger,
	}
}

// SignIn handles POST /login.
func (h *AccountHandler) SignIn(c echo.Context) error {
	var input usecase.SignInInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	session, err := h.accountUC.SignIn(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.cookies.SetSession(c, session)

	return c.Redirect(http.StatusSeeOther, pathAfterLogin)
}

// SignUp handles POST /register.
func (h *AccountHandler) SignUp(c echo.Context) error {
	var input usecase.SignUpInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	verifier, err := h.accountUC.SignUp(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.cookies.SetCodeVerifier(c, verifier)

	return response.Message(c, "Bitte bestätige deine E-Mail-Adresse über den Link, den wir dir geschickt haben.")
}

// ExchangeCode handles GET /login/auth, the target of every emailed link.
func (h *AccountHandler) ExchangeCode(c echo.Context) error {
	code := c.QueryParam("code")
	verifier := h.cookies.TakeCodeVerifier(c)

	session, err := h.accountUC.ExchangeCode(c.Request().Context(), code, verifier)
	if err != nil {
		if strings.TrimSpace(code) == "" {
			return response.HandleAppError(c, err)
		}
		deliverycontext.Logger(c.Request().Context(), h.logger).
			Warn("Auth code exchange failed", slog.Any("error", err))

		return c.Redirect(http.StatusSeeOther, pathAuthCodeError)
	}

	h.cookies.SetSession(c, session)

	return c.Redirect(http.StatusSeeOther, safeRedirectTarget(c.QueryParam("next")))
}

// ResetPassword handles POST /login/reset-password.
func (h *AccountHandler) ResetPassword(c echo.Context) error {
	verifier, err := h.accountUC.ResetPassword(c.Request().Context(), c.FormValue("email"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.cookies.SetCodeVerifier(c, verifier)

	return response.Message(c, "Wir haben dir einen Link zum Zurücksetzen deines Passworts geschickt.")
}

// ResendSignup handles POST /login/otp/resend.
func (h *AccountHandler) ResendSignup(c echo.Context) error {
	if err := h.accountUC.ResendSignup(c.Request().Context(), c.FormValue("email")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Die Bestätigungs-E-Mail wurde erneut gesendet.")
}

// SignOut handles POST /logout. The cookies are cleared even if revoking upstream fails.
func (h *AccountHandler) SignOut(c echo.Context) error {
	if err := h.accountUC.SignOut(c.Request().Context(), deliverycontext.GetAccessToken(c)); err != nil {
		deliverycontext.Logger(c.Request().Context(), h.logger).
			Warn("Sign out failed upstream", slog.Any("error", err))
	}

	h.cookies.Clear(c)

	return c.Redirect(http.StatusSeeOther, pathAfterLogout)
}

// UpdateEmail handles POST /user/update-email.
func (h *AccountHandler) UpdateEmail(c echo.Context) error {
	if _, err := requireSession(c); err != nil {
		return err
	}

	err := h.accountUC.UpdateEmail(c.Request().Context(), deliverycontext.GetAccessToken(c), c.FormValue("email"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Bitte bestätige die neue E-Mail-Adresse über den Link, den wir dir geschickt haben.")
}

// UpdatePassword handles POST /user/update-password.
func (h *AccountHandler) UpdatePassword(c echo.Context) error {
	if _, err := requireSession(c); err != nil {
		return err
	}

	err := h.accountUC.UpdatePassword(c.Request().Context(), deliverycontext.GetAccessToken(c), c.FormValue("password"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Dein Passwort wurde geändert.")
}

// safeRedirectTarget only follows same-site relative paths.
func safeRedirectTarget(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return pathAfterLogin
	}

	return next
}
