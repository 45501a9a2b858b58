package main

import (
	"context"
	"log/slog"
	"os"

	"recruit/config"
	"recruit/internal/delivery"
	"recruit/internal/delivery/api"
	"recruit/internal/delivery/api/middleware"
	"recruit/internal/delivery/api/router/handler"
	"recruit/internal/delivery/housekeeping"
	"recruit/internal/domain/repository"
	"recruit/internal/domain/service"
	"recruit/internal/infra/activity"
	"recruit/internal/infra/auth"
	"recruit/internal/infra/auth/google"
	logs "recruit/internal/infra/log"
	"recruit/internal/infra/mail"
	"recruit/internal/infra/metrics"
	"recruit/internal/infra/persistence/postgres"
	"recruit/internal/infra/persistence/redisstore"
	"recruit/internal/infra/pubsub"
	"recruit/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			metrics.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewPasswordResetRepository,
			postgres.NewActivityRepository,
			postgres.NewTransactionManager,
			newOTPRepository,
		),
	)
}

// newOTPRepository picks the OTP store from otp.store. The Redis client is
// only created when it is selected.
func newOTPRepository(lc fx.Lifecycle, cfg *config.Config, db *gorm.DB, logger *slog.Logger) (repository.OTPRepository, error) {
	if cfg.OTP.Store != config.OTPStoreRedis {
		return postgres.NewOTPRepository(db), nil
	}

	client, err := redisstore.NewClient(lc, cfg.Redis)
	if err != nil {
		return nil, err
	}
	logger.Info("Using Redis OTP store", slog.String("addr", cfg.Redis.Addr))

	return redisstore.NewOTPRepository(client), nil
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newGoogleAuthService,
			mail.NewMailSender,
			mail.NewMailDispatcher,
			activity.NewTracker,
		),
	)
}

// newGoogleAuthService leaves Google sign-in disabled when no client ID is set.
func newGoogleAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthAuthService {
	if cfg.GoogleOAuth == nil || cfg.GoogleOAuth.ClientID == "" {
		return nil
	}

	return google.NewAuthService(cfg, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewAccountService,
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
			handler.NewAdminHandler,
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
			fx.Annotate(
				housekeeping.New,
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

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
