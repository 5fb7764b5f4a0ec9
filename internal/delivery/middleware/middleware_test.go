package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/TimDev9492/chad-website/config"
	deliverycontext "github.com/TimDev9492/chad-website/internal/delivery/context"
	"github.com/TimDev9492/chad-website/internal/domain/entity"
	"github.com/TimDev9492/chad-website/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func serveWith(t *testing.T, req *http.Request, handler echo.HandlerFunc, middlewares ...echo.MiddlewareFunc) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.GET("/user/songs/:id", handler, middlewares...)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestRequestIDMiddleware_AdoptsCallerID(t *testing.T) {
	logger, buf := newBufferLogger()
	m := NewRequestIDMiddleware(logger)

	req := httptest.NewRequest(http.MethodGet, "/user/songs/1", nil)
	req.Header.Set(echo.HeaderXRequestID, "abc-123")

	var seen string
	rec := serveWith(t, req, func(c echo.Context) error {
		seen = deliverycontext.RequestID(c)
		deliverycontext.Logger(c.Request().Context(), nil).Info("inside")

		return c.NoContent(http.StatusNoContent)
	}, m.Process)

	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", rec.Header().Get(echo.HeaderXRequestID))
	assert.Contains(t, buf.String(), `"request_id":"abc-123"`)
}

func TestRequestIDMiddleware_ReplacesMalformedID(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{name: "missing", id: ""},
		{name: "log injection", id: "abc\n{\"level\":\"ERROR\"}"},
		{name: "too long", id: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, _ := newBufferLogger()
			m := NewRequestIDMiddleware(logger)

			req := httptest.NewRequest(http.MethodGet, "/user/songs/1", nil)
			req.Header.Set(echo.HeaderXRequestID, tt.id)

			rec := serveWith(t, req, func(c echo.Context) error {
				return c.NoContent(http.StatusNoContent)
			}, m.Process)

			got := rec.Header().Get(echo.HeaderXRequestID)
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}

func TestLoggerMiddleware_LogsRouteAndUser(t *testing.T) {
	logger, buf := newBufferLogger()
	cfg := &config.Config{}
	cfg.Env.Debug = true

	userID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/user/songs/42", nil)
	rec := serveWith(t, req, func(c echo.Context) error {
		deliverycontext.SetSession(c, &usecase.SessionState{
			Claims: &entity.SessionClaims{UserID: userID},
		})

		return c.NoContent(http.StatusNotFound)
	}, NewRequestIDMiddleware(logger).Process, NewLoggerMiddleware(logger, cfg).Handle)

	require.Equal(t, http.StatusNotFound, rec.Code)
	out := buf.String()
	assert.Contains(t, out, `"route":"/user/songs/:id"`)
	assert.Contains(t, out, `"user_id":"`+userID.String()+`"`)
	assert.Contains(t, out, `"level":"WARN"`)
	assert.Contains(t, out, `"request_id":"`+rec.Header().Get(echo.HeaderXRequestID)+`"`)
}

func TestLoggerMiddleware_SilentWithoutDebug(t *testing.T) {
	logger, buf := newBufferLogger()

	rec := serveWith(t, httptest.NewRequest(http.MethodGet, "/user/songs/1", nil), func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, NewLoggerMiddleware(logger, &config.Config{}).Handle)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, buf.String())
}
