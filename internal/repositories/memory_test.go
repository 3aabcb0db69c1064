package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/himalayan-sound/api/internal/domain"
)

func sampleProducts() []domain.Product {
	return []domain.Product{
		{
			ID:        "sb-1",
			Name:      domain.LocalizedText{domain.LocaleEN: "Bowl One"},
			Category:  domain.CategorySingingBowls,
			Materials: []string{"bronze"},
			Price:     10000,
		},
		{
			ID:       "bell-1",
			Name:     domain.LocalizedText{domain.LocaleEN: "Bell One"},
			Category: domain.CategoryBells,
			Price:    3000,
		},
	}
}

func TestProductRepositoryFindByID(t *testing.T) {
	repo := NewMemoryProductRepository(sampleProducts())

	product, err := repo.FindByID(context.Background(), "sb-1")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if product.Name.Resolve(domain.LocaleEN) != "Bowl One" {
		t.Fatalf("unexpected product %+v", product)
	}

	_, err = repo.FindByID(context.Background(), "missing")
	repoErr, ok := err.(RepositoryError)
	if !ok || !repoErr.IsNotFound() {
		t.Fatalf("expected not-found RepositoryError, got %v", err)
	}
}

func TestProductRepositoryListIsIsolated(t *testing.T) {
	seed := sampleProducts()
	repo := NewMemoryProductRepository(seed)

	listed, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	listed[0].Name[domain.LocaleEN] = "mutated"
	listed[0].Materials[0] = "plastic"

	again, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if again[0].Name.Resolve(domain.LocaleEN) != "Bowl One" || again[0].Materials[0] != "bronze" {
		t.Fatal("repository state leaked through a listed copy")
	}
}

func TestContentRepositoryHidesDrafts(t *testing.T) {
	posts := []domain.ContentPost{
		{
			ID: "p1", Slug: "first", Status: domain.ContentPostPublished,
			Title:       domain.LocalizedText{domain.LocaleEN: "First"},
			PublishedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "p2", Slug: "second", Status: domain.ContentPostPublished,
			Title:       domain.LocalizedText{domain.LocaleEN: "Second"},
			PublishedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		{ID: "p3", Slug: "hidden", Status: domain.ContentPostDraft},
	}
	repo := NewMemoryContentRepository(posts)

	listed, err := repo.ListPublished(context.Background())
	if err != nil {
		t.Fatalf("ListPublished: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 published posts, got %d", len(listed))
	}
	if listed[0].Slug != "second" {
		t.Fatalf("expected newest first, got %q", listed[0].Slug)
	}

	_, err = repo.FindBySlug(context.Background(), "hidden")
	if err == nil {
		t.Fatal("draft post should not resolve by slug")
	}
	repoErr, ok := err.(RepositoryError)
	if !ok || !repoErr.IsNotFound() {
		t.Fatalf("expected not-found RepositoryError, got %v", err)
	}
}

func TestSeedProductsParse(t *testing.T) {
	products, err := SeedProducts()
	if err != nil {
		t.Fatalf("SeedProducts: %v", err)
	}
	if len(products) == 0 {
		t.Fatal("seed catalog is empty")
	}
	for _, p := range products {
		if p.ID == "" || p.Name.Resolve(domain.LocaleEN) == "" {
			t.Fatalf("incomplete seed product %+v", p)
		}
		if !domain.KnownCategory(p.Category) {
			t.Fatalf("product %s has unknown category %q", p.ID, p.Category)
		}
		if p.Name.Resolve(domain.LocaleUK) == "" || p.Name.Resolve(domain.LocaleRU) == "" {
			t.Fatalf("product %s misses a localized name", p.ID)
		}
	}
}

func TestSeedPostsParse(t *testing.T) {
	posts, err := SeedPosts()
	if err != nil {
		t.Fatalf("SeedPosts: %v", err)
	}
	var published, drafts int
	for _, post := range posts {
		switch post.Status {
		case domain.ContentPostPublished:
			published++
		case domain.ContentPostDraft:
			drafts++
		}
		if post.Slug == "" || post.Title.Resolve(domain.LocaleEN) == "" {
			t.Fatalf("incomplete seed post %+v", post)
		}
	}
	if published == 0 {
		t.Fatal("seed needs at least one published post")
	}
	if drafts == 0 {
		t.Fatal("seed needs a draft post to exercise visibility rules")
	}
}
