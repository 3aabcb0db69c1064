package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/himalayan-sound/api/internal/di"
	"github.com/himalayan-sound/api/internal/handlers"
	"github.com/himalayan-sound/api/internal/platform/config"
	"github.com/himalayan-sound/api/internal/platform/observability"
)

func main() {
	ctx := context.Background()

	baseLogger, err := observability.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = baseLogger.Sync()
	}()

	logger := baseLogger.Named("api")
	ctx = observability.WithLogger(ctx, logger)

	cfg, err := config.Load()
	if err != nil {
		var invalid *config.InvalidValuesError
		if errors.As(err, &invalid) {
			logger.Fatal("invalid configuration values", zap.Strings("keys", invalid.Keys))
		}
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	container, err := di.NewContainer(ctx, cfg, observability.EventLogger(logger.Named("services")))
	if err != nil {
		logger.Fatal("failed to build container", zap.Error(err))
	}

	productHandlers := handlers.NewProductHandlers(container.Services.Catalog)
	contentHandlers := handlers.NewContentHandlers(container.Services.Content)
	cartHandlers := handlers.NewCartHandlers(time.Now)
	orderHandlers := handlers.NewOrderHandlers(time.Now, 0)
	leadHandlers := handlers.NewLeadHandlers(observability.EventLogger(logger.Named("leads")))
	paymentHandlers := handlers.NewPaymentHandlers(handlers.PaymentHandlersDeps{
		Provider: container.Payments,
		Currency: cfg.Payments.Currency,
		Clock:    time.Now,
	})
	mediaHandlers := handlers.NewMediaHandlers(container.Media)
	userHandlers := handlers.NewUserHandlers(time.Now)
	authHandlers := handlers.NewAuthHandlers(container.Auth)

	healthHandlers := handlers.NewHealthHandlers(
		handlers.WithHealthRepository(container.Health),
		handlers.WithHealthVersion(buildVersion()),
	)

	middlewares := []func(http.Handler) http.Handler{
		observability.InjectLoggerMiddleware(logger.Named("http")),
		observability.RecoveryMiddleware(logger.Named("http")),
		observability.RequestLoggerMiddleware(),
	}

	router := handlers.NewRouter(
		handlers.WithMiddlewares(middlewares...),
		handlers.WithHealthHandlers(healthHandlers),
		handlers.WithProductRoutes(productHandlers.Routes),
		handlers.WithContentRoutes(contentHandlers.Routes),
		handlers.WithCartRoutes(cartHandlers.Routes),
		handlers.WithMediaRoutes(mediaHandlers.Routes),
		handlers.WithUserRoutes(func(r chi.Router) {
			userHandlers.Routes(r)
			orderHandlers.UserRoutes(r)
		}),
		handlers.WithAuthRoutes(authHandlers.Routes),
		handlers.WithOrderRoutes(orderHandlers.Routes),
		handlers.WithLeadRoutes(leadHandlers.Routes),
		handlers.WithPaymentRoutes(paymentHandlers.Routes),
	)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverLogger := logger.Named("http").With(zap.String("addr", server.Addr))
	go func() {
		serverLogger.Info("himalayan-sound api listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverLogger.Fatal("http server error", zap.Error(err))
		}
	}()

	<-shutdown
	logger.Info("shutdown signal received; draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func buildVersion() string {
	if v := strings.TrimSpace(os.Getenv("API_BUILD_VERSION")); v != "" {
		return v
	}
	return "dev"
}
