package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/TimDev9492/chad-website/config"
	"github.com/TimDev9492/chad-website/internal/delivery"
	"github.com/TimDev9492/chad-website/internal/delivery/functions"
	"github.com/TimDev9492/chad-website/internal/delivery/functions/handler"
	"github.com/TimDev9492/chad-website/internal/infra/auth/gotrue"
	"github.com/TimDev9492/chad-website/internal/infra/image"
	logs "github.com/TimDev9492/chad-website/internal/infra/log"
	"github.com/TimDev9492/chad-website/internal/infra/mail"
	"github.com/TimDev9492/chad-website/internal/infra/persistence/postgres"
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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProfileRepository,
			postgres.NewParticipantRepository,
			postgres.NewRoleRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			gotrue.NewClient,
			image.NewProcessor,
			mail.NewClient,
			spreadsheet.NewParticipantSheetWriter,
			storage.NewAvatarStorage,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAvatarService,
			impl.NewWebhookService,
			impl.NewParticipantService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewWebhookHandler,
			handler.NewExportHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				functions.NewServer,
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
