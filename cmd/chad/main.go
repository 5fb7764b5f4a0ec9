package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/TimDev9492/chad-website/config"
	"github.com/TimDev9492/chad-website/internal/delivery"
	"github.com/TimDev9492/chad-website/internal/delivery/api"
	"github.com/TimDev9492/chad-website/internal/delivery/api/middleware"
	"github.com/TimDev9492/chad-website/internal/delivery/api/router/handler"
	"github.com/TimDev9492/chad-website/internal/infra/auth"
	"github.com/TimDev9492/chad-website/internal/infra/auth/gotrue"
	"github.com/TimDev9492/chad-website/internal/infra/image"
	logs "github.com/TimDev9492/chad-website/internal/infra/log"
	"github.com/TimDev9492/chad-website/internal/infra/persistence/postgres"
	"github.com/TimDev9492/chad-website/internal/infra/qrcode"
	"github.com/TimDev9492/chad-website/internal/infra/sentry"
	"github.com/TimDev9492/chad-website/internal/infra/spotify"
	"github.com/TimDev9492/chad-website/internal/infra/spreadsheet"
	"github.com/TimDev9492/chad-website/internal/infra/storage"
	"github.com/TimDev9492/chad-website/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		sentry.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProfileRepository,
			postgres.NewAddressRepository,
			postgres.NewFoodPreferenceRepository,
			postgres.NewLookupRepository,
			postgres.NewPaymentRepository,
			postgres.NewParticipantRepository,
			postgres.NewRoleRepository,
			postgres.NewSongRepository,
			postgres.NewWorkshopRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTVerifier,
			gotrue.NewClient,
			image.NewProcessor,
			qrcode.NewFromConfig,
			spotify.NewClient,
			spreadsheet.NewParticipantSheetWriter,
			storage.NewAvatarStorage,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewAccountService,
			impl.NewProfileService,
			impl.NewAvatarService,
			impl.NewPaymentService,
			impl.NewWorkshopService,
			impl.NewParticipantService,
			impl.NewSongService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionCookies,
			handler.NewAccountHandler,
			handler.NewProfileHandler,
			handler.NewPaymentHandler,
			handler.NewCatalogueHandler,
			handler.NewSongHandler,
			handler.NewTestHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
