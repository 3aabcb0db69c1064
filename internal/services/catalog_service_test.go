package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/himalayan-sound/api/internal/catalog"
	"github.com/himalayan-sound/api/internal/domain"
	"github.com/himalayan-sound/api/internal/repositories"
)

type stubProductRepository struct {
	products []domain.Product
	listErr  error
	findErr  error
}

func (s *stubProductRepository) List(context.Context) ([]domain.Product, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.products, nil
}

func (s *stubProductRepository) FindByID(_ context.Context, productID string) (domain.Product, error) {
	if s.findErr != nil {
		return domain.Product{}, s.findErr
	}
	for _, p := range s.products {
		if p.ID == productID {
			return p, nil
		}
	}
	return domain.Product{}, repositories.NewNotFoundError("product %q not found", productID)
}

func catalogFixture() []domain.Product {
	return []domain.Product{
		{
			ID:       "sb-1",
			Name:     domain.LocalizedText{domain.LocaleEN: "Full Moon Bowl", domain.LocaleUK: "Чаша повного місяця"},
			Price:    18900,
			Currency: "USD",
			Category: domain.CategorySingingBowls,
			Materials: []string{
				"bronze",
			},
			Inventory:  3,
			IsFeatured: true,
			CreatedAt:  time.Date(2025, 11, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:        "acc-1",
			Name:      domain.LocalizedText{domain.LocaleEN: "Suede Mallet"},
			Price:     1900,
			Currency:  "USD",
			Category:  domain.CategoryAccessories,
			Inventory: 10,
			CreatedAt: time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC),
		},
	}
}

func newTestCatalogService(t *testing.T, repo repositories.ProductRepository) CatalogService {
	t.Helper()
	svc, err := NewCatalogService(CatalogServiceDeps{Repository: repo})
	if err != nil {
		t.Fatalf("NewCatalogService: %v", err)
	}
	return svc
}

func TestListProductsResolvesLocale(t *testing.T) {
	svc := newTestCatalogService(t, &stubProductRepository{products: catalogFixture()})

	views, err := svc.ListProducts(context.Background(), domain.LocaleUK, catalog.FilterOptions{})
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 products, got %d", len(views))
	}
	// Popularity default puts the featured bowl first.
	if views[0].ID != "sb-1" || views[0].Name != "Чаша повного місяця" {
		t.Fatalf("unexpected first view: %+v", views[0])
	}
	// Mallet has no Ukrainian name; the default locale fills in.
	if views[1].Name != "Suede Mallet" {
		t.Fatalf("expected default-locale fallback, got %q", views[1].Name)
	}
}

func TestListProductsAppliesFilter(t *testing.T) {
	svc := newTestCatalogService(t, &stubProductRepository{products: catalogFixture()})

	views, err := svc.ListProducts(context.Background(), domain.LocaleEN, catalog.FilterOptions{
		Categories: []domain.ProductCategory{domain.CategoryAccessories},
	})
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if len(views) != 1 || views[0].ID != "acc-1" {
		t.Fatalf("unexpected filtered views: %+v", views)
	}
}

func TestGetProduct(t *testing.T) {
	svc := newTestCatalogService(t, &stubProductRepository{products: catalogFixture()})

	view, err := svc.GetProduct(context.Background(), "sb-1", domain.LocaleEN)
	if err != nil {
		t.Fatalf("GetProduct: %v", err)
	}
	if view.Name != "Full Moon Bowl" || !view.InStock {
		t.Fatalf("unexpected view: %+v", view)
	}

	if _, err := svc.GetProduct(context.Background(), "missing", domain.LocaleEN); !errors.Is(err, ErrCatalogNotFound) {
		t.Fatalf("expected ErrCatalogNotFound, got %v", err)
	}
	if _, err := svc.GetProduct(context.Background(), "  ", domain.LocaleEN); !errors.Is(err, ErrCatalogInvalidInput) {
		t.Fatalf("expected ErrCatalogInvalidInput, got %v", err)
	}
}

func TestCatalogRepositoryFailureTranslates(t *testing.T) {
	svc := newTestCatalogService(t, &stubProductRepository{
		listErr: repositories.NewUnavailableError("backend down"),
	})

	if _, err := svc.ListProducts(context.Background(), domain.LocaleEN, catalog.FilterOptions{}); !errors.Is(err, ErrCatalogUnavailable) {
		t.Fatalf("expected ErrCatalogUnavailable, got %v", err)
	}
}

func TestNewCatalogServiceRequiresRepository(t *testing.T) {
	if _, err := NewCatalogService(CatalogServiceDeps{}); err == nil {
		t.Fatal("expected error for missing repository")
	}
}
