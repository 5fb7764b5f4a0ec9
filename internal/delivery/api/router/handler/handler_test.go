package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/TimDev9492/chad-website/config"
	"github.com/TimDev9492/chad-website/internal/delivery/api/validator"
	deliverycontext "github.com/TimDev9492/chad-website/internal/delivery/context"
	"github.com/TimDev9492/chad-website/internal/domain/entity"
	"github.com/TimDev9492/chad-website/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var testUserID = uuid.MustParse("3f1d2c4b-5a6e-4f70-8a9b-0c1d2e3f4a5b")

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestCookies() *SessionCookies {
	return NewSessionCookies(&config.Config{})
}

func formRequest(method, target string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	return req
}

func newContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func withSession(c echo.Context, role entity.Role) *usecase.SessionState {
	state := &usecase.SessionState{
		Claims:  &entity.SessionClaims{UserID: testUserID},
		Profile: &entity.UserProfile{UserID: testUserID, Role: role},
	}
	deliverycontext.SetSession(c, state)
	deliverycontext.SetAccessToken(c, "access-token")

	return state
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}

	return nil
}
