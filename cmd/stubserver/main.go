// Command stubserver runs the development stub backend. It exposes the same
// wire surface as the production API, seeded from the local identity table,
// so the dashboard can be developed with no backend deployment.
package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"cinvoluntario/config"
	"cinvoluntario/internal/delivery"
	"cinvoluntario/internal/delivery/http"
	"cinvoluntario/internal/delivery/http/middleware"
	"cinvoluntario/internal/delivery/http/router/handler"
	"cinvoluntario/internal/infra/auth"
	logs "cinvoluntario/internal/infra/log"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
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
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			handler.NewRegistry,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewEstudanteHandler,
			handler.NewProjetoHandler,
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

func startServer(ctx context.Context, params startServerParams) {
	for _, d := range params.Deliveries {
		go func() {
			if err := d.Serve(ctx); err != nil {
				slog.Error("failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
