package context

import (
	"github.com/TimDev9492/chad-website/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SetSession stores the resolved session of the caller.
func SetSession(c echo.Context, state *usecase.SessionState) {
	c.Set(string(keySession), state)
}

// GetSession returns the caller's session, or nil for anonymous requests.
func GetSession(c echo.Context) *usecase.SessionState {
	state, _ := c.Get(string(keySession)).(*usecase.SessionState)

	return state
}

// SetAccessToken stores the token the session was resolved from.
func SetAccessToken(c echo.Context, token string) {
	c.Set(string(keyAccessToken), token)
}

// GetAccessToken returns the caller's access token, or "" when there is none.
func GetAccessToken(c echo.Context) string {
	token, _ := c.Get(string(keyAccessToken)).(string)

	return token
}
