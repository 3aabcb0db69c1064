package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/himalayan-sound/api/internal/catalog"
	"github.com/himalayan-sound/api/internal/domain"
	"github.com/himalayan-sound/api/internal/platform/httpx"
	"github.com/himalayan-sound/api/internal/services"
)

// ProductHandlers serves the read-only product catalog.
type ProductHandlers struct {
	catalog services.CatalogService
}

func NewProductHandlers(catalogSvc services.CatalogService) *ProductHandlers {
	return &ProductHandlers{catalog: catalogSvc}
}

// Routes wires the /products endpoints onto the provided router.
func (h *ProductHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.listProducts)
	r.Get("/{productId}", h.getProduct)
}

func (h *ProductHandlers) listProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.catalog == nil {
		httpx.WriteError(ctx, w, httpx.NewError("catalog_unavailable", "catalog service is unavailable", http.StatusServiceUnavailable))
		return
	}

	opts, err := parseFilterOptions(r.URL.Query())
	if err != nil {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "invalid filter parameters", http.StatusBadRequest).
			WithDetails(map[string]any{"reason": err.Error()}))
		return
	}

	locale := requestLocale(r)
	views, err := h.catalog.ListProducts(ctx, locale, opts)
	if err != nil {
		h.writeCatalogError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"products": views,
		"count":    len(views),
		"locale":   string(locale),
	})
}

func (h *ProductHandlers) getProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.catalog == nil {
		httpx.WriteError(ctx, w, httpx.NewError("catalog_unavailable", "catalog service is unavailable", http.StatusServiceUnavailable))
		return
	}

	productID := chi.URLParam(r, "productId")
	view, err := h.catalog.GetProduct(ctx, productID, requestLocale(r))
	if err != nil {
		h.writeCatalogError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"product": view})
}

func (h *ProductHandlers) writeCatalogError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	switch {
	case errors.Is(err, services.ErrCatalogInvalidInput):
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "invalid product request", http.StatusBadRequest))
	case errors.Is(err, services.ErrCatalogNotFound):
		httpx.WriteError(ctx, w, httpx.NewError("product_not_found", "product not found", http.StatusNotFound))
	default:
		httpx.WriteError(ctx, w, httpx.NewError("catalog_unavailable", "catalog lookup failed", http.StatusBadGateway))
	}
}

// parseFilterOptions maps catalog query parameters onto filter options.
// Multi-value parameters accept both repetition and comma separation.
func parseFilterOptions(query url.Values) (catalog.FilterOptions, error) {
	opts := catalog.FilterOptions{
		Search: strings.TrimSpace(query.Get("search")),
	}

	for _, raw := range splitMulti(query["category"]) {
		category := domain.ProductCategory(strings.ToLower(raw))
		if !domain.KnownCategory(category) {
			return catalog.FilterOptions{}, fmt.Errorf("unknown category %q", raw)
		}
		opts.Categories = append(opts.Categories, category)
	}

	opts.Materials = splitMulti(query["material"])

	if raw := strings.TrimSpace(query.Get("priceMin")); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v < 0 {
			return catalog.FilterOptions{}, fmt.Errorf("priceMin must be a non-negative integer")
		}
		opts.PriceMin = &v
	}
	if raw := strings.TrimSpace(query.Get("priceMax")); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v < 0 {
			return catalog.FilterOptions{}, fmt.Errorf("priceMax must be a non-negative integer")
		}
		opts.PriceMax = &v
	}

	if raw := strings.TrimSpace(query.Get("inStock")); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return catalog.FilterOptions{}, fmt.Errorf("inStock must be a boolean")
		}
		opts.InStockOnly = v
	}
	if raw := strings.TrimSpace(query.Get("handmade")); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return catalog.FilterOptions{}, fmt.Errorf("handmade must be a boolean")
		}
		opts.HandmadeOnly = v
	}

	if raw := strings.TrimSpace(query.Get("sort")); raw != "" {
		sortBy, ok := catalog.ParseSort(raw)
		if !ok {
			return catalog.FilterOptions{}, fmt.Errorf("unknown sort %q", raw)
		}
		opts.SortBy = sortBy
	}

	return opts, nil
}

func splitMulti(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
