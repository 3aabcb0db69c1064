package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/himalayan-sound/api/internal/domain"
)

// Sort enumerates the orderings the storefront listing supports.
type Sort string

const (
	// SortPopularity orders featured products first, alphabetically within
	// each group. This is the default.
	SortPopularity Sort = "popularity"
	// SortPriceLowHigh orders by ascending price.
	SortPriceLowHigh Sort = "priceLowHigh"
	// SortPriceHighLow orders by descending price.
	SortPriceHighLow Sort = "priceHighLow"
	// SortNameAZ orders by the default-locale name, A to Z.
	SortNameAZ Sort = "nameAZ"
	// SortNameZA orders by the default-locale name, Z to A.
	SortNameZA Sort = "nameZA"
	// SortNewest orders by descending creation time.
	SortNewest Sort = "newest"
)

// ParseSort maps a wire value to a Sort. The empty string parses as the
// popularity default; unknown values are rejected.
func ParseSort(value string) (Sort, bool) {
	switch s := Sort(strings.TrimSpace(value)); s {
	case "":
		return SortPopularity, true
	case SortPopularity, SortPriceLowHigh, SortPriceHighLow, SortNameAZ, SortNameZA, SortNewest:
		return s, true
	default:
		return SortPopularity, false
	}
}

// FilterOptions is the transient, UI-scoped criteria set used to narrow and
// order a product listing. The zero value applies no filtering and the
// default (popularity) sort. Empty category and material sets mean "no
// filter", not "match nothing". Nil price bounds are unbounded.
type FilterOptions struct {
	Search       string
	Categories   []domain.ProductCategory
	PriceMin     *int64
	PriceMax     *int64
	Materials    []string
	InStockOnly  bool
	HandmadeOnly bool
	SortBy       Sort
}

// Apply computes the filtered, sorted view of products described by opts.
// It is pure and deterministic: the input slice is never mutated, an empty
// input yields an empty output, and a price range with min > max yields an
// empty result. It never fails.
func Apply(products []domain.Product, opts FilterOptions) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if matches(p, opts) {
			out = append(out, p)
		}
	}
	sortProducts(out, opts.SortBy)
	return out
}

func matches(p domain.Product, opts FilterOptions) bool {
	if search := strings.TrimSpace(opts.Search); search != "" && !matchesSearch(p, search) {
		return false
	}
	if len(opts.Categories) > 0 && !containsCategory(opts.Categories, p.Category) {
		return false
	}
	if opts.PriceMin != nil && p.Price < *opts.PriceMin {
		return false
	}
	if opts.PriceMax != nil && p.Price > *opts.PriceMax {
		return false
	}
	if len(opts.Materials) > 0 && !sharesMaterial(p.Materials, opts.Materials) {
		return false
	}
	if opts.InStockOnly && !p.InStock() {
		return false
	}
	if opts.HandmadeOnly && !p.IsHandmade {
		return false
	}
	return true
}

// matchesSearch performs a case-insensitive substring match against the
// product's name and description in every supported locale, plus its
// category and materials. Any single field match keeps the product.
func matchesSearch(p domain.Product, search string) bool {
	needle := strings.ToLower(search)
	for _, text := range p.Name {
		if strings.Contains(strings.ToLower(text), needle) {
			return true
		}
	}
	for _, text := range p.Description {
		if strings.Contains(strings.ToLower(text), needle) {
			return true
		}
	}
	if strings.Contains(strings.ToLower(string(p.Category)), needle) {
		return true
	}
	for _, material := range p.Materials {
		if strings.Contains(strings.ToLower(material), needle) {
			return true
		}
	}
	return false
}

func containsCategory(set []domain.ProductCategory, category domain.ProductCategory) bool {
	for _, c := range set {
		if c == category {
			return true
		}
	}
	return false
}

func sharesMaterial(have []string, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if strings.EqualFold(strings.TrimSpace(h), strings.TrimSpace(w)) {
				return true
			}
		}
	}
	return false
}

func sortProducts(products []domain.Product, by Sort) {
	collator := collate.New(language.Make(string(domain.DefaultLocale)), collate.IgnoreCase)
	name := func(p domain.Product) string { return p.Name.Resolve(domain.DefaultLocale) }

	switch by {
	case SortPriceLowHigh:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case SortPriceHighLow:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case SortNameAZ:
		sort.SliceStable(products, func(i, j int) bool {
			return collator.CompareString(name(products[i]), name(products[j])) < 0
		})
	case SortNameZA:
		sort.SliceStable(products, func(i, j int) bool {
			return collator.CompareString(name(products[i]), name(products[j])) > 0
		})
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool { return products[i].CreatedAt.After(products[j].CreatedAt) })
	default:
		// Popularity: featured group first, alphabetical within each group.
		sort.SliceStable(products, func(i, j int) bool {
			if products[i].IsFeatured != products[j].IsFeatured {
				return products[i].IsFeatured
			}
			return collator.CompareString(name(products[i]), name(products[j])) < 0
		})
	}
}
