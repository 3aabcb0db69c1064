package repositories

import (
	"context"
	"sort"
	"strings"

	"github.com/himalayan-sound/api/internal/domain"
)

type memoryProductRepository struct {
	products []domain.Product
	byID     map[string]int
}

// NewMemoryProductRepository serves a fixed product list. Products are
// copied on the way in and out so callers cannot mutate the seed.
func NewMemoryProductRepository(products []domain.Product) ProductRepository {
	copied := cloneProducts(products)
	byID := make(map[string]int, len(copied))
	for i, p := range copied {
		byID[p.ID] = i
	}
	return &memoryProductRepository{products: copied, byID: byID}
}

func (r *memoryProductRepository) List(_ context.Context) ([]domain.Product, error) {
	return cloneProducts(r.products), nil
}

func (r *memoryProductRepository) FindByID(_ context.Context, productID string) (domain.Product, error) {
	idx, ok := r.byID[strings.TrimSpace(productID)]
	if !ok {
		return domain.Product{}, NewNotFoundError("product repository: product %q not found", productID)
	}
	return cloneProduct(r.products[idx]), nil
}

type memoryContentRepository struct {
	published []domain.ContentPost
	bySlug    map[string]domain.ContentPost
}

// NewMemoryContentRepository serves a fixed post list. Draft posts are
// invisible on every path, listings and slug lookups alike.
func NewMemoryContentRepository(posts []domain.ContentPost) ContentRepository {
	published := make([]domain.ContentPost, 0, len(posts))
	bySlug := make(map[string]domain.ContentPost, len(posts))
	for _, post := range posts {
		if post.Status != domain.ContentPostPublished {
			continue
		}
		copied := clonePost(post)
		published = append(published, copied)
		bySlug[copied.Slug] = copied
	}
	sort.SliceStable(published, func(i, j int) bool {
		return published[i].PublishedAt.After(published[j].PublishedAt)
	})
	return &memoryContentRepository{published: published, bySlug: bySlug}
}

func (r *memoryContentRepository) ListPublished(_ context.Context) ([]domain.ContentPost, error) {
	out := make([]domain.ContentPost, len(r.published))
	for i, post := range r.published {
		out[i] = clonePost(post)
	}
	return out, nil
}

func (r *memoryContentRepository) FindBySlug(_ context.Context, slug string) (domain.ContentPost, error) {
	post, ok := r.bySlug[strings.TrimSpace(slug)]
	if !ok {
		return domain.ContentPost{}, NewNotFoundError("content repository: post %q not found", slug)
	}
	return clonePost(post), nil
}

func cloneProducts(products []domain.Product) []domain.Product {
	out := make([]domain.Product, len(products))
	for i, p := range products {
		out[i] = cloneProduct(p)
	}
	return out
}

func cloneProduct(p domain.Product) domain.Product {
	p.Name = cloneText(p.Name)
	p.Description = cloneText(p.Description)
	p.Materials = append([]string(nil), p.Materials...)
	return p
}

func clonePost(p domain.ContentPost) domain.ContentPost {
	p.Title = cloneText(p.Title)
	p.Summary = cloneText(p.Summary)
	p.BodyMarkdown = cloneText(p.BodyMarkdown)
	p.Tags = append([]string(nil), p.Tags...)
	return p
}

func cloneText(t domain.LocalizedText) domain.LocalizedText {
	if t == nil {
		return nil
	}
	out := make(domain.LocalizedText, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}
