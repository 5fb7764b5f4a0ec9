package middleware

import (
	"net/http"
	"strings"

	"github.com/TimDev9492/chad-website/internal/delivery/api/response"
	deliverycontext "github.com/TimDev9492/chad-website/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// Route prefixes and redirect targets of the route guard.
const (
	PathLogin        = "/login"
	PathRegister     = "/register"
	PathUser         = "/user"
	PathUserInfo     = "/user/info"
	PathUserPayments = "/user/payments"
	PathParticipants = "/participants"
	PathAdmin        = "/admin"
	PathMusicSearch  = "/api/spotify-search"
	PathHome         = "/"
)

const redirectSeeOther = http.StatusSeeOther

// RouteGuard enforces the access rules that depend on the caller's session. Rules are
// checked in order and the first match decides.
type RouteGuard struct {
	paidPrefixes []string
}

// NewRouteGuard is the constructor for RouteGuard. Paths under paidPrefixes require a
// confirmed payment.
func NewRouteGuard(paidPrefixes ...string) *RouteGuard {
	return &RouteGuard{paidPrefixes: paidPrefixes}
}

// Protect is the echo middleware form of the rule table.
func (g *RouteGuard) Protect(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		path := c.Request().URL.Path
		state := deliverycontext.GetSession(c)
		loggedIn := state != nil

		switch {
		case strings.HasPrefix(path, PathMusicSearch) && !loggedIn:
			return response.Unauthorized(c, "UNAUTHORIZED", "Unauthorized")

		case strings.HasPrefix(path, PathAdmin) && !state.IsAdmin():
			return c.Redirect(redirectSeeOther, PathHome)

		case g.isPaidPath(path) && !(loggedIn && state.HasPaid):
			return c.Redirect(redirectSeeOther, PathUserPayments)

		case strings.HasPrefix(path, PathUserPayments) && !(loggedIn && state.InfosProvided):
			return c.Redirect(redirectSeeOther, PathUserInfo)

		case (strings.HasPrefix(path, PathUser) || strings.HasPrefix(path, PathParticipants)) && !loggedIn:
			return c.Redirect(redirectSeeOther, PathLogin)

		case (path == PathLogin || path == PathRegister) && loggedIn:
			return c.Redirect(redirectSeeOther, PathUser)
		}

		return next(c)
	}
}

func (g *RouteGuard) isPaidPath(path string) bool {
	for _, prefix := range g.paidPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}
