package main

import (
	"context"
	"log/slog"
	"os"

	"dirbot/config"
	"dirbot/internal/delivery"
	"dirbot/internal/delivery/http"
	"dirbot/internal/delivery/http/middleware"
	"dirbot/internal/delivery/http/router/handler"
	"dirbot/internal/domain/repository"
	"dirbot/internal/domain/service"
	"dirbot/internal/infra/cache"
	logs "dirbot/internal/infra/log"
	"dirbot/internal/infra/persistence/firestore"
	"dirbot/internal/infra/persistence/postgres"
	"dirbot/internal/infra/session"
	"dirbot/internal/usecase/impl"

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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newCatalogRepository,
		),
	)
}

type catalogParams struct {
	fx.In
	fx.Lifecycle

	Context context.Context
	Config  *config.Config
	Logger  *slog.Logger
}

// newCatalogRepository selects the catalog backend from configuration. Only
// the configured backend's client is constructed.
func newCatalogRepository(params catalogParams) (repository.BusinessRepository, error) {
	if params.Config.Catalog.Backend == config.BackendFirestore {
		client, err := firestore.New(firestore.Params{
			Lifecycle: params.Lifecycle,
			Context:   params.Context,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}

		return firestore.NewBusinessRepository(client, params.Config.Firestore.Collection), nil
	}

	db, err := postgres.New(postgres.Params{
		Lifecycle: params.Lifecycle,
		Config:    params.Config,
		Logger:    params.Logger,
	})
	if err != nil {
		return nil, err
	}

	return postgres.NewBusinessRepository(db), nil
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newReplyCache,
		),
	)
}

// newReplyCache creates the Redis reply cache with dependency injection
func newReplyCache(lc fx.Lifecycle, cfg *config.Config) (service.ReplyCache, error) {
	if cfg.Redis == nil {
		return nil, nil // Redis is optional
	}

	client, err := cache.NewClient(lc, cfg.Redis)
	if err != nil {
		return nil, err
	}

	return cache.NewReplyCache(client), nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			session.NewStore,
			impl.NewRegistrationService,
			impl.NewDirectoryService,
			impl.NewRouterService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewWebhookHandler,
			handler.NewHealthHandler,
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
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
