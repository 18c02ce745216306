package main

import (
	"context"
	"log/slog"
	"os"

	"icebreaker/config"
	"icebreaker/internal/delivery"
	"icebreaker/internal/delivery/api"
	"icebreaker/internal/delivery/api/router/handler"
	"icebreaker/internal/infra/ai/gemini"
	logs "icebreaker/internal/infra/log"
	"icebreaker/internal/infra/persistence/memory"
	"icebreaker/internal/infra/qrcode"
	"icebreaker/internal/infra/seed"
	"icebreaker/internal/usecase/impl"
	"icebreaker/internal/validation"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(appOptions()).Run()
}

func appOptions() fx.Option {
	return fx.Options(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	)
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		validation.New,
		seed.NewDataset,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			memory.NewActivityStore,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			gemini.NewTopicSuggester,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewIcebreakerService,
			impl.NewFeedService,
			impl.NewEngagementService,
			impl.NewLeaderboardService,
			impl.NewProfileService,
			impl.NewSuggestionService,
			impl.NewInviteService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewFeedHandler,
			handler.NewIcebreakerHandler,
			handler.NewEngagementHandler,
			handler.NewLeaderboardHandler,
			handler.NewProfileHandler,
			handler.NewSuggestionHandler,
			handler.NewInviteHandler,
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
