package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/bistro-service/internal/api/http"
	"github.com/spec-kit/bistro-service/internal/api/http/handlers"
	"github.com/spec-kit/bistro-service/internal/auth"
	"github.com/spec-kit/bistro-service/internal/config"
	"github.com/spec-kit/bistro-service/internal/events"
	"github.com/spec-kit/bistro-service/internal/gateway"
	"github.com/spec-kit/bistro-service/internal/observability"
	"github.com/spec-kit/bistro-service/internal/persistence"
	"github.com/spec-kit/bistro-service/internal/repository"
	"github.com/spec-kit/bistro-service/internal/service"
	"github.com/spec-kit/bistro-service/internal/worker"
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
	userRepo := repository.NewUserRepository(pool)
	menuRepo := repository.NewMenuRepository(pool)
	reviewRepo := repository.NewReviewRepository(pool)
	cartRepo := repository.NewCartRepository(pool)
	paymentRepo := repository.NewPaymentRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	var paymentGateway gateway.PaymentGateway
	if cfg.Payment.SecretKey != "" {
		stripeClient, err := gateway.NewStripeClient(gateway.StripeConfig{
			SecretKey: cfg.Payment.SecretKey,
			BaseURL:   cfg.Payment.BaseURL,
		})
		if err != nil {
			logger.Fatal("failed to init payment gateway", zap.Error(err))
		}
		paymentGateway = stripeClient
	} else {
		logger.Warn("PAYMENT_SECRET_KEY not provided; payment intents disabled")
	}

	var mailer gateway.Mailer
	if cfg.Notification.MailgunDomain != "" && cfg.Notification.MailgunAPIKey != "" {
		mailgunClient, err := gateway.NewMailgunClient(gateway.MailgunConfig{
			Domain:  cfg.Notification.MailgunDomain,
			APIKey:  cfg.Notification.MailgunAPIKey,
			From:    cfg.Notification.EmailFrom,
			BaseURL: cfg.Notification.BaseURL,
		})
		if err != nil {
			logger.Fatal("failed to init mail client", zap.Error(err))
		}
		mailer = mailgunClient
	} else {
		logger.Warn("mailgun not configured; confirmation mail disabled")
	}

	authService := service.NewAuthService(*cfg, userRepo)
	userService := service.NewUserService(userRepo, dispatcher)
	menuService := service.NewMenuService(menuRepo, redis.Client, cfg.Redis.MenuCacheTTL(), logger)
	reviewService := service.NewReviewService(reviewRepo)
	cartService := service.NewCartService(cartRepo)
	paymentService := service.NewPaymentService(service.PaymentDependencies{
		PaymentRepo: paymentRepo,
		CartRepo:    cartRepo,
		Gateway:     paymentGateway,
		Dispatcher:  dispatcher,
		Currency:    cfg.Payment.Currency,
	})
	statsService := service.NewStatsService(userRepo, menuRepo, paymentRepo)

	notificationService := service.NewNotificationService(dispatcher, mailer, logger)
	worker.StartNotificationWorker(notificationService, logger)

	authMiddleware := auth.NewMiddleware(authService.TokenManager(), userRepo)

	app := fiber.New()
	metrics := observability.NewMetrics()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Users:          handlers.NewUsersHandler(authService, userService),
		Menu:           handlers.NewMenuHandler(menuService),
		Reviews:        handlers.NewReviewsHandler(reviewService),
		Carts:          handlers.NewCartsHandler(cartService),
		Payments:       handlers.NewPaymentsHandler(paymentService),
		Stats:          handlers.NewStatsHandler(statsService),
		AuthMiddleware: authMiddleware,
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
