package main

import (
	"context"
	"log/slog"

	"meuapp/config"
	"meuapp/internal/delivery"
	"meuapp/internal/delivery/http"
	"meuapp/internal/delivery/http/flash"
	"meuapp/internal/delivery/http/middleware"
	"meuapp/internal/delivery/http/router/handler"
	"meuapp/internal/delivery/http/view"
	deliverymiddleware "meuapp/internal/delivery/middleware"
	"meuapp/internal/infra/auth"
	logs "meuapp/internal/infra/log"
	"meuapp/internal/infra/persistence/sqlite"
	"meuapp/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In

	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectView(),
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
		sqlite.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			sqlite.NewCredentialRepository,
			sqlite.NewSessionRepository,
			sqlite.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewSessionService,
		),
	)
}

func injectView() fx.Option {
	return fx.Options(
		fx.Provide(
			flash.New,
			view.NewRenderer,
			view.NewPages,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			deliverymiddleware.NewRequestIDMiddleware,
			deliverymiddleware.NewLoggerMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewSessionMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPageHandler,
			handler.NewAuthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startServer runs every delivery in the background. A delivery that fails stops the whole app.
func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				params.Logger.Error("Failed to start server", slog.Any("error", err))
				_ = params.Shutdowner.Shutdown(fx.ExitCode(1))
			}
		}()
	}
}
