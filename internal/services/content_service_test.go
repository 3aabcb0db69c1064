package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/himalayan-sound/api/internal/domain"
	"github.com/himalayan-sound/api/internal/repositories"
)

type stubContentRepository struct {
	posts   []domain.ContentPost
	listErr error
}

func (s *stubContentRepository) ListPublished(context.Context) ([]domain.ContentPost, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.posts, nil
}

func (s *stubContentRepository) FindBySlug(_ context.Context, slug string) (domain.ContentPost, error) {
	for _, post := range s.posts {
		if post.Slug == slug {
			return post, nil
		}
	}
	return domain.ContentPost{}, repositories.NewNotFoundError("post %q not found", slug)
}

func contentFixture() []domain.ContentPost {
	return []domain.ContentPost{
		{
			ID:   "p1",
			Slug: "first-bowl",
			Title: domain.LocalizedText{
				domain.LocaleEN: "Choosing a Bowl",
				domain.LocaleRU: "Выбор чаши",
			},
			Summary: domain.LocalizedText{domain.LocaleEN: "A buyer's guide."},
			BodyMarkdown: domain.LocalizedText{
				domain.LocaleEN: "## Start with the sound\n\nListen before you buy.\n\n<script>alert(1)</script>",
			},
			Author:      "Tenzin Dorje",
			Tags:        []string{"guide"},
			Status:      domain.ContentPostPublished,
			PublishedAt: time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC),
		},
	}
}

func newTestContentService(t *testing.T, repo repositories.ContentRepository) ContentService {
	t.Helper()
	svc, err := NewContentService(ContentServiceDeps{Repository: repo})
	if err != nil {
		t.Fatalf("NewContentService: %v", err)
	}
	return svc
}

func TestListPosts(t *testing.T) {
	svc := newTestContentService(t, &stubContentRepository{posts: contentFixture()})

	posts, err := svc.ListPosts(context.Background(), domain.LocaleRU)
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("expected 1 post, got %d", len(posts))
	}
	if posts[0].Title != "Выбор чаши" {
		t.Fatalf("title = %q", posts[0].Title)
	}
	// Summary has no Russian copy; the default locale fills in.
	if posts[0].Summary != "A buyer's guide." {
		t.Fatalf("summary = %q", posts[0].Summary)
	}
}

func TestGetPostRendersMarkdown(t *testing.T) {
	svc := newTestContentService(t, &stubContentRepository{posts: contentFixture()})

	post, err := svc.GetPost(context.Background(), "first-bowl", domain.LocaleEN)
	if err != nil {
		t.Fatalf("GetPost: %v", err)
	}
	if !strings.Contains(post.BodyHTML, "<h2") || !strings.Contains(post.BodyHTML, "Start with the sound") {
		t.Fatalf("markdown heading not rendered: %q", post.BodyHTML)
	}
	if strings.Contains(post.BodyHTML, "<script") {
		t.Fatalf("script tag survived sanitization: %q", post.BodyHTML)
	}
}

func TestGetPostNotFound(t *testing.T) {
	svc := newTestContentService(t, &stubContentRepository{posts: contentFixture()})

	if _, err := svc.GetPost(context.Background(), "missing", domain.LocaleEN); !errors.Is(err, ErrContentNotFound) {
		t.Fatalf("expected ErrContentNotFound, got %v", err)
	}
	if _, err := svc.GetPost(context.Background(), " ", domain.LocaleEN); !errors.Is(err, ErrContentInvalidInput) {
		t.Fatalf("expected ErrContentInvalidInput, got %v", err)
	}
}

func TestListPostsRepositoryFailureTranslates(t *testing.T) {
	svc := newTestContentService(t, &stubContentRepository{
		listErr: repositories.NewUnavailableError("backend down"),
	})
	if _, err := svc.ListPosts(context.Background(), domain.LocaleEN); !errors.Is(err, ErrContentUnavailable) {
		t.Fatalf("expected ErrContentUnavailable, got %v", err)
	}
}

func TestNewContentServiceRequiresRepository(t *testing.T) {
	if _, err := NewContentService(ContentServiceDeps{}); err == nil {
		t.Fatal("expected error for missing repository")
	}
}
