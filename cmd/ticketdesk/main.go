package main

import (
	"context"
	"log/slog"
	"os"

	"ticketdesk/config"
	"ticketdesk/internal/delivery"
	"ticketdesk/internal/delivery/api"
	"ticketdesk/internal/delivery/api/middleware"
	"ticketdesk/internal/delivery/api/router/handler"
	"ticketdesk/internal/domain/repository"
	"ticketdesk/internal/domain/service"
	"ticketdesk/internal/infra/auth"
	logs "ticketdesk/internal/infra/log"
	"ticketdesk/internal/infra/metrics"
	"ticketdesk/internal/infra/persistence/memory"
	"ticketdesk/internal/infra/persistence/postgres"
	"ticketdesk/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

// repositories is the storage backend chosen by storage.driver.
type repositories struct {
	fx.Out

	UserRepo   repository.UserRepository
	TicketRepo repository.TicketRepository
	TxManager  repository.TransactionManager
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
		metrics.New,
		func(c *metrics.Collector) metrics.Recorder { return c },
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newRepositories,
		),
	)
}

// newRepositories opens PostgreSQL, or an in-process store for storage.driver: memory.
func newRepositories(params postgres.Params) (repositories, error) {
	if params.Config.Storage.Driver == config.StorageDriverMemory {
		params.Logger.Warn("Using in-memory storage; data is lost on restart")
		store := memory.NewStore()

		return repositories{
			UserRepo:   store.UserRepo(),
			TicketRepo: store.TicketRepo(),
			TxManager:  store,
		}, nil
	}

	db, err := postgres.New(params)
	if err != nil {
		return repositories{}, err
	}

	return repositories{
		UserRepo:   postgres.NewUserRepository(db),
		TicketRepo: postgres.NewTicketRepository(db),
		TxManager:  postgres.NewTransactionManager(db),
	}, nil
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewArgon2Hasher,
			newTokenService,
		),
	)
}

func newTokenService(cfg *config.Config) (service.TokenService, error) {
	return auth.NewJWTService(cfg)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewTicketService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewRateLimiter,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewTicketHandler,
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
