package handler

import (
	"net/http"

	"github.com/TimDev9492/chad-website/internal/delivery/api/response"
	deliverycontext "github.com/TimDev9492/chad-website/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// TestHandler handles test endpoints for middleware validation
type TestHandler struct{}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler() *TestHandler {
	return &TestHandler{}
}

// TestSession reports what the session middleware resolved for the caller.
func (h *TestHandler) TestSession(c echo.Context) error {
	state := deliverycontext.GetSession(c)
	if state == nil {
		return response.Unauthorized(c, "CONTEXT_ERROR", "No session in context")
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"message":       "Session middleware test successful",
		"userID":        state.Claims.UserID,
		"isAdmin":       state.IsAdmin(),
		"infosProvided": state.InfosProvided,
		"hasPaid":       state.HasPaid,
		"profileLoaded": state.Profile != nil,
	})
}

// TestPublicEndpoint tests a public endpoint (no authentication required)
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Public endpoint test successful",
		"status":  "public",
	})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
