// Package services holds the application services between the HTTP handlers
// and the repositories. Services normalise input, resolve locales, and
// translate repository failures into their sentinel errors.
package services

import (
	"context"
	"time"

	"github.com/himalayan-sound/api/internal/catalog"
	"github.com/himalayan-sound/api/internal/domain"
)

// ProductView is a product with its localized fields resolved for one locale.
type ProductView struct {
	ID             string   `json:"id"`
	SKU            string   `json:"sku"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Price          int64    `json:"price"`
	Currency       string   `json:"currency"`
	Category       string   `json:"category"`
	Materials      []string `json:"materials,omitempty"`
	InStock        bool     `json:"inStock"`
	Inventory      int      `json:"inventory"`
	IsFeatured     bool     `json:"isFeatured"`
	IsHandmade     bool     `json:"isHandmade"`
	ImageURL       string   `json:"imageUrl,omitempty"`
	AudioSampleURL string   `json:"audioSampleUrl,omitempty"`
	VideoURL       string   `json:"videoUrl,omitempty"`
	CreatedAt      string   `json:"createdAt"`
}

// PostSummary is a blog post listing entry resolved for one locale.
type PostSummary struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary,omitempty"`
	Author      string    `json:"author,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
}

// PostView is a full blog post with the markdown body rendered to safe HTML.
type PostView struct {
	PostSummary
	BodyHTML string `json:"bodyHtml"`
}

// CatalogService serves the seeded product catalog through the filter engine.
type CatalogService interface {
	ListProducts(ctx context.Context, locale domain.Locale, opts catalog.FilterOptions) ([]ProductView, error)
	GetProduct(ctx context.Context, productID string, locale domain.Locale) (ProductView, error)
}

// ContentService serves localized blog posts with rendered bodies.
type ContentService interface {
	ListPosts(ctx context.Context, locale domain.Locale) ([]PostSummary, error)
	GetPost(ctx context.Context, slug string, locale domain.Locale) (PostView, error)
}
