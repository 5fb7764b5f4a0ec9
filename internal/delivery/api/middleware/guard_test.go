package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "github.com/TimDev9492/chad-website/internal/delivery/context"
	"github.com/TimDev9492/chad-website/internal/domain/entity"
	"github.com/TimDev9492/chad-website/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userSession(infos, paid bool) *usecase.SessionState {
	return &usecase.SessionState{
		Claims:        &entity.SessionClaims{},
		Profile:       &entity.UserProfile{Role: entity.RoleUser},
		InfosProvided: infos,
		HasPaid:       paid,
	}
}

func adminSession() *usecase.SessionState {
	state := userSession(true, true)
	state.Profile.Role = entity.RoleAdmin

	return state
}

func TestRouteGuard_Protect(t *testing.T) {
	tests := []struct {
		name         string
		paidPrefixes []string
		path         string
		session      *usecase.SessionState
		wantCode     int
		wantLocation string
	}{
		{name: "music search anonymous", path: "/api/spotify-search", wantCode: http.StatusUnauthorized},
		{name: "music search logged in", path: "/api/spotify-search", session: userSession(false, false), wantCode: http.StatusOK},
		{name: "admin anonymous", path: "/admin/confirm-payment", wantCode: http.StatusSeeOther, wantLocation: "/"},
		{name: "admin as user", path: "/admin", session: userSession(true, true), wantCode: http.StatusSeeOther, wantLocation: "/"},
		{name: "admin as admin", path: "/admin/confirm-payment", session: adminSession(), wantCode: http.StatusOK},
		{name: "paid route unpaid", paidPrefixes: []string{"/user/workshops"}, path: "/user/workshops", session: userSession(true, false), wantCode: http.StatusSeeOther, wantLocation: "/user/payments"},
		{name: "paid route paid", paidPrefixes: []string{"/user/workshops"}, path: "/user/workshops", session: userSession(true, true), wantCode: http.StatusOK},
		{name: "payments without infos", path: "/user/payments", session: userSession(false, false), wantCode: http.StatusSeeOther, wantLocation: "/user/info"},
		{name: "payments anonymous", path: "/user/payments", wantCode: http.StatusSeeOther, wantLocation: "/user/info"},
		{name: "payments with infos", path: "/user/payments", session: userSession(true, false), wantCode: http.StatusOK},
		{name: "user anonymous", path: "/user/info", wantCode: http.StatusSeeOther, wantLocation: "/login"},
		{name: "participants anonymous", path: "/participants", wantCode: http.StatusSeeOther, wantLocation: "/login"},
		{name: "user logged in", path: "/user", session: userSession(false, false), wantCode: http.StatusOK},
		{name: "login anonymous", path: "/login", wantCode: http.StatusOK},
		{name: "login logged in", path: "/login", session: userSession(false, false), wantCode: http.StatusSeeOther, wantLocation: "/user"},
		{name: "register logged in", path: "/register", session: userSession(false, false), wantCode: http.StatusSeeOther, wantLocation: "/user"},
		{name: "login callback logged in", path: "/login/auth", session: userSession(false, false), wantCode: http.StatusOK},
		{name: "public page", path: "/workshops", wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, tt.path, nil), rec)
			if tt.session != nil {
				deliverycontext.SetSession(c, tt.session)
			}

			handler := NewRouteGuard(tt.paidPrefixes...).Protect(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})

			require.NoError(t, handler(c))
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get(echo.HeaderLocation))
		})
	}
}
