package di

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/himalayan-sound/api/internal/cart"
	"github.com/himalayan-sound/api/internal/media"
	"github.com/himalayan-sound/api/internal/payments"
	"github.com/himalayan-sound/api/internal/platform/auth"
	"github.com/himalayan-sound/api/internal/platform/config"
	"github.com/himalayan-sound/api/internal/repositories"
	"github.com/himalayan-sound/api/internal/services"
)

// Logger is the structured event hook threaded through every component the
// container assembles.
type Logger func(ctx context.Context, event string, fields map[string]any)

// Services bundles the service-layer contracts that handlers rely upon.
// Concrete implementations are assembled in NewContainer.
type Services struct {
	Catalog services.CatalogService
	Content services.ContentService
}

// Container wires repositories, services, and the simulated provider surfaces
// for runtime use.
type Container struct {
	Config   config.Config
	Services Services
	Cart     *cart.Store
	Payments payments.Provider
	Media    *media.Registry
	Auth     *auth.TokenIssuer
	Health   repositories.HealthRepository
}

// NewContainer constructs the runtime dependencies from the embedded seed
// catalog and the supplied configuration.
func NewContainer(ctx context.Context, cfg config.Config, logger Logger) (*Container, error) {
	if logger == nil {
		logger = func(context.Context, string, map[string]any) {}
	}

	products, err := repositories.SeedProducts()
	if err != nil {
		return nil, fmt.Errorf("load product seed: %w", err)
	}
	posts, err := repositories.SeedPosts()
	if err != nil {
		return nil, fmt.Errorf("load post seed: %w", err)
	}
	productRepo := repositories.NewMemoryProductRepository(products)
	contentRepo := repositories.NewMemoryContentRepository(posts)

	catalogSvc, err := services.NewCatalogService(services.CatalogServiceDeps{
		Repository: productRepo,
		Clock:      time.Now,
		Logger:     logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build catalog service: %w", err)
	}

	contentSvc, err := services.NewContentService(services.ContentServiceDeps{
		Repository: contentRepo,
		Logger:     logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build content service: %w", err)
	}

	cartStorage, err := newCartStorage(cfg.Cart)
	if err != nil {
		return nil, fmt.Errorf("build cart storage: %w", err)
	}
	cartStore, err := cart.NewStore(cart.StoreDeps{
		Storage: cartStorage,
		Clock:   time.Now,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build cart store: %w", err)
	}

	provider, err := newPaymentProvider(cfg.Payments, logger)
	if err != nil {
		return nil, fmt.Errorf("build payment provider: %w", err)
	}

	registry, err := media.DefaultRegistry(cfg.Media.MaxUploadBytes, logger)
	if err != nil {
		return nil, fmt.Errorf("build media registry: %w", err)
	}

	issuer, err := newTokenIssuer(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("build token issuer: %w", err)
	}

	health, err := repositories.NewHealthRepository([]repositories.HealthCheck{
		{
			Name: "catalog",
			Check: func(ctx context.Context) error {
				_, err := productRepo.List(ctx)
				return err
			},
		},
		{
			Name: "content",
			Check: func(ctx context.Context) error {
				_, err := contentRepo.ListPublished(ctx)
				return err
			},
		},
		{
			Name: "cart_storage",
			Check: func(context.Context) error {
				_, _, err := cartStorage.Read(cart.StorageKey)
				return err
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("build health repository: %w", err)
	}

	return &Container{
		Config: cfg,
		Services: Services{
			Catalog: catalogSvc,
			Content: contentSvc,
		},
		Cart:     cartStore,
		Payments: provider,
		Media:    registry,
		Auth:     issuer,
		Health:   health,
	}, nil
}

func newCartStorage(cfg config.CartConfig) (cart.Storage, error) {
	if cfg.StorageDir == "" {
		return cart.NewMemoryStorage(), nil
	}
	return cart.NewFileStorage(cfg.StorageDir)
}

// newPaymentProvider selects Stripe when an API key is configured and falls
// back to the simulated provider otherwise.
func newPaymentProvider(cfg config.PaymentsConfig, logger Logger) (payments.Provider, error) {
	if cfg.StripeAPIKey == "" {
		return payments.NewSimulatedProvider(payments.SimulatedProviderConfig{
			Logger: payments.Logger(logger),
			Clock:  time.Now,
		}), nil
	}
	return payments.NewStripeProvider(payments.StripeProviderConfig{
		APIKey: cfg.StripeAPIKey,
		Logger: payments.Logger(logger),
		Clock:  time.Now,
	})
}

// newTokenIssuer falls back to a per-process signing secret when none is
// configured. Tokens issued that way do not survive a restart, which is
// acceptable for the simulated login flow.
func newTokenIssuer(cfg config.AuthConfig) (*auth.TokenIssuer, error) {
	secret := cfg.SigningSecret
	if secret == "" {
		secret = ulid.Make().String()
	}
	return auth.NewTokenIssuer(auth.TokenIssuerDeps{
		SigningSecret: secret,
		SessionTTL:    cfg.SessionTTL,
		Clock:         time.Now,
	})
}
