package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/himalayan-sound/api/internal/catalog"
	"github.com/himalayan-sound/api/internal/domain"
	"github.com/himalayan-sound/api/internal/services"
)

type stubCatalogService struct {
	views      []services.ProductView
	view       services.ProductView
	err        error
	lastLocale domain.Locale
	lastOpts   catalog.FilterOptions
}

func (s *stubCatalogService) ListProducts(_ context.Context, locale domain.Locale, opts catalog.FilterOptions) ([]services.ProductView, error) {
	s.lastLocale = locale
	s.lastOpts = opts
	return s.views, s.err
}

func (s *stubCatalogService) GetProduct(_ context.Context, _ string, locale domain.Locale) (services.ProductView, error) {
	s.lastLocale = locale
	return s.view, s.err
}

func productTestRouter(svc services.CatalogService) chi.Router {
	r := chi.NewRouter()
	NewProductHandlers(svc).Routes(r)
	return r
}

func TestListProductsParsesQuery(t *testing.T) {
	svc := &stubCatalogService{views: []services.ProductView{{ID: "sb-1"}}}
	r := productTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet,
		"/?search=moon&category=singing-bowls,bells&material=bronze&priceMin=1000&priceMax=20000&inStock=true&sort=priceLowHigh&locale=uk", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if svc.lastLocale != domain.LocaleUK {
		t.Fatalf("locale = %q", svc.lastLocale)
	}
	opts := svc.lastOpts
	if opts.Search != "moon" {
		t.Fatalf("search = %q", opts.Search)
	}
	if len(opts.Categories) != 2 || opts.Categories[0] != domain.CategorySingingBowls || opts.Categories[1] != domain.CategoryBells {
		t.Fatalf("categories = %v", opts.Categories)
	}
	if len(opts.Materials) != 1 || opts.Materials[0] != "bronze" {
		t.Fatalf("materials = %v", opts.Materials)
	}
	if opts.PriceMin == nil || *opts.PriceMin != 1000 || opts.PriceMax == nil || *opts.PriceMax != 20000 {
		t.Fatalf("price range = %v / %v", opts.PriceMin, opts.PriceMax)
	}
	if !opts.InStockOnly || opts.HandmadeOnly {
		t.Fatalf("flags = %v / %v", opts.InStockOnly, opts.HandmadeOnly)
	}
	if opts.SortBy != catalog.SortPriceLowHigh {
		t.Fatalf("sort = %q", opts.SortBy)
	}
}

func TestListProductsRejectsBadQuery(t *testing.T) {
	cases := []string{
		"/?category=weapons",
		"/?priceMin=abc",
		"/?priceMax=-5",
		"/?inStock=maybe",
		"/?sort=chaotic",
	}
	for _, target := range cases {
		r := productTestRouter(&stubCatalogService{})
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", target, rr.Code)
		}
	}
}

func TestListProductsNegotiatesAcceptLanguage(t *testing.T) {
	svc := &stubCatalogService{}
	r := productTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "ru-RU,ru;q=0.9")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if svc.lastLocale != domain.LocaleRU {
		t.Fatalf("locale = %q", svc.lastLocale)
	}
}

func TestGetProductNotFound(t *testing.T) {
	r := productTestRouter(&stubCatalogService{err: services.ErrCatalogNotFound})

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("parse body: %v", err)
	}
	if body["error"] != "product_not_found" {
		t.Fatalf("error code = %v", body["error"])
	}
}

func TestListProductsUpstreamFailure(t *testing.T) {
	r := productTestRouter(&stubCatalogService{err: services.ErrCatalogUnavailable})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rr.Code)
	}
}
