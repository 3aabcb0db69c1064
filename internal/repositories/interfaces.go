// Package repositories defines the read surfaces the services consume and
// their in-memory implementations. The storefront carries no real database;
// product and content data is seeded from embedded catalog files.
package repositories

import (
	"context"

	"github.com/himalayan-sound/api/internal/domain"
)

// RepositoryError wraps low-level data access failures with the
// categorisation services use to pick response codes.
type RepositoryError interface {
	error
	IsNotFound() bool
	IsConflict() bool
	IsUnavailable() bool
}

// ProductRepository serves the seeded product catalog.
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, productID string) (domain.Product, error)
}

// ContentRepository serves the seeded blog posts.
type ContentRepository interface {
	ListPublished(ctx context.Context) ([]domain.ContentPost, error)
	FindBySlug(ctx context.Context, slug string) (domain.ContentPost, error)
}

// HealthRepository evaluates dependency probes for readiness reporting.
type HealthRepository interface {
	Collect(ctx context.Context) (HealthReport, error)
}
