// Command painel runs the dashboard's client-side session shell: it loads
// config, restores any persisted session, and keeps the typed API services
// alive for the UI layer to call.
package main

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"cinvoluntario/config"
	"cinvoluntario/internal/domain/service"
	"cinvoluntario/internal/infra/auth"
	"cinvoluntario/internal/infra/backend"
	logs "cinvoluntario/internal/infra/log"
	"cinvoluntario/internal/infra/rest"
	"cinvoluntario/internal/infra/store"
	"cinvoluntario/internal/usecase"
	"cinvoluntario/internal/usecase/impl"
)

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		fx.Invoke(
			registerSession,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		store.NewFileStore,
		rest.NewClient,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newAuthBackend,
		),
	)
}

// newAuthBackend picks the auth strategy from config: the remote backend
// speaks to the production API, the local one runs entirely offline.
func newAuthBackend(
	cfg *config.Config,
	client *rest.Client,
	hasher service.PasswordHasher,
	tokenSvc service.TokenService,
	tokens service.TokenStore,
	logger *slog.Logger,
) (service.AuthBackend, error) {
	if cfg.Auth.Mode == config.AuthModeLocal {
		return backend.NewLocalBackend(cfg, hasher, tokenSvc, tokens, logger)
	}

	return backend.NewRemoteBackend(client, logger), nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewEstudanteService,
			impl.NewProjetoService,
			impl.NewMatriculaService,
		),
	)
}

type sessionParams struct {
	fx.In
	fx.Lifecycle

	Logger     *slog.Logger
	Session    usecase.SessionUsecase
	Estudantes usecase.EstudanteUsecase
	Projetos   usecase.ProjetoUsecase
	Matriculas usecase.MatriculaUsecase
}

// registerSession ties the session lifecycle to the process lifecycle: a
// persisted token is resolved on start, and the in-memory session is
// released on stop without touching the durable token.
func registerSession(params sessionParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			result := params.Session.Restore(ctx)
			if !result.Success {
				params.Logger.Warn("session not restored", slog.String("error", result.Error))

				return nil
			}
			if result.Data != nil {
				params.Logger.Info("session active",
					slog.String("username", result.Data.Username),
					slog.Any("role", result.Data.Role))
			} else {
				params.Logger.Info("no stored session, awaiting login")
			}

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return params.Session.Close(ctx)
		},
	})
}
