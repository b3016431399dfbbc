package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"harvest/config"
	"harvest/internal/delivery"
	"harvest/internal/delivery/http"
	"harvest/internal/delivery/http/middleware"
	"harvest/internal/delivery/http/router/handler"
	"harvest/internal/domain/service"
	"harvest/internal/infra/auth"
	"harvest/internal/infra/chat"
	"harvest/internal/infra/filestore"
	logs "harvest/internal/infra/log"
	"harvest/internal/infra/market"
	"harvest/internal/infra/persistence/postgres"
	"harvest/internal/usecase/impl"

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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewTransactionManager,
			postgres.NewProductRepository,
			postgres.NewCertificationRepository,
			postgres.NewOrderRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			filestore.NewBlobStore,
			market.NewMockFeed,
			newChatProvider,
		),
	)
}

// newChatProvider creates the Gemini chat provider with dependency injection
func newChatProvider(ctx context.Context, cfg *config.Config) (service.ChatProvider, error) {
	if cfg.Chat == nil || !cfg.Chat.Enabled {
		return nil, nil // Chat is optional
	}

	provider, err := chat.NewGenaiProvider(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat provider: %w", err)
	}

	return provider, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewProductService,
			impl.NewCertificationService,
			impl.NewOrderService,
			impl.NewChatService,
			impl.NewMarketService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewProductHandler,
			handler.NewCertificationHandler,
			handler.NewOrderHandler,
			handler.NewMarketHandler,
			handler.NewChatHandler,
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
