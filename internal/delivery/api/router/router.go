// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/TimDev9492/chad-website/config"
	"github.com/TimDev9492/chad-website/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler   *handler.AccountHandler
	ProfileHandler   *handler.ProfileHandler
	PaymentHandler   *handler.PaymentHandler
	CatalogueHandler *handler.CatalogueHandler
	SongHandler      *handler.SongHandler
	TestHandler      *handler.TestHandler
	Config           *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler   *handler.AccountHandler
	profileHandler   *handler.ProfileHandler
	paymentHandler   *handler.PaymentHandler
	catalogueHandler *handler.CatalogueHandler
	songHandler      *handler.SongHandler
	testHandler      *handler.TestHandler
	config           *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:   params.AccountHandler,
		profileHandler:   params.ProfileHandler,
		paymentHandler:   params.PaymentHandler,
		catalogueHandler: params.CatalogueHandler,
		songHandler:      params.SongHandler,
		testHandler:      params.TestHandler,
		config:           params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application. Access rules are
// enforced by the route guard in front of the router.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Account
	e.POST("/login", r.accountHandler.SignIn)
	e.POST("/register", r.accountHandler.SignUp)
	e.GET("/login/auth", r.accountHandler.ExchangeCode)
	e.POST("/login/reset-password", r.accountHandler.ResetPassword)
	e.POST("/login/otp/resend", r.accountHandler.ResendSignup)
	e.POST("/logout", r.accountHandler.SignOut)

	// Workshops are public
	e.GET("/workshops", r.catalogueHandler.ListWorkshops)
	e.GET("/workshops/:id", r.catalogueHandler.GetWorkshop)

	e.GET("/participants", r.catalogueHandler.ListParticipants)

	userGroup := e.Group("/user")
	{
		userGroup.GET("/info", r.profileHandler.GetInfo)
		userGroup.POST("/info", r.profileHandler.SubmitInfo)
		userGroup.POST("/avatar", r.profileHandler.UploadAvatar)

		userGroup.POST("/update-email", r.accountHandler.UpdateEmail)
		userGroup.POST("/update-password", r.accountHandler.UpdatePassword)

		userGroup.GET("/payments", r.paymentHandler.GetOverview)
		userGroup.POST("/payments", r.paymentHandler.ReportTransfer)
		userGroup.GET("/payments/qr", r.paymentHandler.PaymentQR)

		userGroup.GET("/songs", r.songHandler.ListSuggestions)
		userGroup.POST("/songs", r.songHandler.SubmitSuggestion)
		userGroup.DELETE("/songs/:id", r.songHandler.DeleteSuggestion)
		userGroup.POST("/songs/:id/like", r.songHandler.Like)
		userGroup.DELETE("/songs/:id/like", r.songHandler.Unlike)
	}

	adminGroup := e.Group("/admin")
	{
		adminGroup.POST("/confirm-payment", r.paymentHandler.ConfirmPayment)
	}

	e.GET("/api/spotify-search", r.songHandler.Search)
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
		testGroup.GET("/session", r.testHandler.TestSession)
	}
}
