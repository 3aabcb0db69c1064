package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/himalayan-sound/api/internal/catalog"
	"github.com/himalayan-sound/api/internal/domain"
	"github.com/himalayan-sound/api/internal/repositories"
)

var (
	// ErrCatalogInvalidInput indicates the caller supplied invalid query data.
	ErrCatalogInvalidInput = errors.New("catalog service: invalid input")
	// ErrCatalogNotFound indicates the requested product does not exist.
	ErrCatalogNotFound = errors.New("catalog service: product not found")
	// ErrCatalogUnavailable indicates the catalog backend failed.
	ErrCatalogUnavailable = errors.New("catalog service: catalog unavailable")
)

// CatalogServiceDeps groups constructor parameters for the catalog service.
type CatalogServiceDeps struct {
	Repository repositories.ProductRepository
	Clock      func() time.Time
	Logger     func(ctx context.Context, event string, fields map[string]any)
}

type catalogService struct {
	repo   repositories.ProductRepository
	clock  func() time.Time
	logger func(ctx context.Context, event string, fields map[string]any)
}

// NewCatalogService constructs the catalog service with the supplied dependencies.
func NewCatalogService(deps CatalogServiceDeps) (CatalogService, error) {
	if deps.Repository == nil {
		return nil, errors.New("catalog service: repository is not configured")
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	logger := deps.Logger
	if logger == nil {
		logger = func(context.Context, string, map[string]any) {}
	}
	return &catalogService{
		repo:   deps.Repository,
		clock:  func() time.Time { return clock().UTC() },
		logger: logger,
	}, nil
}

func (s *catalogService) ListProducts(ctx context.Context, locale domain.Locale, opts catalog.FilterOptions) ([]ProductView, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, translateCatalogRepositoryError(err)
	}

	filtered := catalog.Apply(products, opts)

	views := make([]ProductView, 0, len(filtered))
	for _, product := range filtered {
		views = append(views, productView(product, locale))
	}

	s.logger(ctx, "catalog.products_listed", map[string]any{
		"total":    len(products),
		"returned": len(views),
		"locale":   string(locale),
	})
	return views, nil
}

func (s *catalogService) GetProduct(ctx context.Context, productID string, locale domain.Locale) (ProductView, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return ProductView{}, fmt.Errorf("%w: product id is required", ErrCatalogInvalidInput)
	}

	product, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		return ProductView{}, translateCatalogRepositoryError(err)
	}
	return productView(product, locale), nil
}

func productView(p domain.Product, locale domain.Locale) ProductView {
	return ProductView{
		ID:             p.ID,
		SKU:            p.SKU,
		Name:           p.Name.Resolve(locale),
		Description:    p.Description.Resolve(locale),
		Price:          p.Price,
		Currency:       p.Currency,
		Category:       string(p.Category),
		Materials:      append([]string(nil), p.Materials...),
		InStock:        p.InStock(),
		Inventory:      p.Inventory,
		IsFeatured:     p.IsFeatured,
		IsHandmade:     p.IsHandmade,
		ImageURL:       p.ImageURL,
		AudioSampleURL: p.AudioSampleURL,
		VideoURL:       p.VideoURL,
		CreatedAt:      p.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func translateCatalogRepositoryError(err error) error {
	var repoErr repositories.RepositoryError
	if errors.As(err, &repoErr) {
		switch {
		case repoErr.IsNotFound():
			return fmt.Errorf("%w: %v", ErrCatalogNotFound, err)
		case repoErr.IsUnavailable():
			return fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
		}
	}
	return fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
}
