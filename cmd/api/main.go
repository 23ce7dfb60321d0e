package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/thecoders/cartunn-backend/internal/api/http"
	"github.com/thecoders/cartunn-backend/internal/api/http/handlers"
	"github.com/thecoders/cartunn-backend/internal/config"
	"github.com/thecoders/cartunn-backend/internal/events"
	"github.com/thecoders/cartunn-backend/internal/observability"
	"github.com/thecoders/cartunn-backend/internal/persistence"
	"github.com/thecoders/cartunn-backend/internal/repository"
	"github.com/thecoders/cartunn-backend/internal/service"
	"github.com/thecoders/cartunn-backend/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	orderRepo := repository.NewOrderRepository(pool)
	profileRepo := repository.NewProfileRepository(pool)
	refundRepo := repository.NewProductRefundRepository(pool)
	notificationRepo := repository.NewNotificationRepository(pool)
	userRepo := repository.NewUserRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	orderService := service.NewOrderService(orderRepo, dispatcher, logger)
	profileService := service.NewProfileService(profileRepo)
	refundService := service.NewProductRefundService(refundRepo)
	notificationService := service.NewNotificationService(notificationRepo, logger)
	iamService := service.NewIamService(*cfg, userRepo)

	worker.StartNotificationWorker(dispatcher, notificationService)

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Orders:         handlers.NewOrdersHandler(orderService),
		Profiles:       handlers.NewProfilesHandler(profileService),
		ProductRefunds: handlers.NewProductRefundsHandler(refundService),
		Notifications:  handlers.NewNotificationsHandler(notificationService),
		Authentication: handlers.NewAuthenticationHandler(iamService),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
