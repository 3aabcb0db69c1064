package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/himalayan-sound/api/internal/domain"
	"github.com/himalayan-sound/api/internal/repositories"
)

var (
	// ErrContentInvalidInput indicates the caller supplied invalid data.
	ErrContentInvalidInput = errors.New("content service: invalid input")
	// ErrContentNotFound indicates the requested post does not exist.
	ErrContentNotFound = errors.New("content service: post not found")
	// ErrContentUnavailable indicates the content backend failed.
	ErrContentUnavailable = errors.New("content service: content unavailable")
)

// ContentServiceDeps groups constructor parameters for the content service.
type ContentServiceDeps struct {
	Repository repositories.ContentRepository
	Logger     func(ctx context.Context, event string, fields map[string]any)
}

type contentService struct {
	repo      repositories.ContentRepository
	markdown  goldmark.Markdown
	sanitizer *bluemonday.Policy
	logger    func(ctx context.Context, event string, fields map[string]any)
}

// NewContentService constructs the content service with the supplied dependencies.
func NewContentService(deps ContentServiceDeps) (ContentService, error) {
	if deps.Repository == nil {
		return nil, errors.New("content service: repository is not configured")
	}
	logger := deps.Logger
	if logger == nil {
		logger = func(context.Context, string, map[string]any) {}
	}
	return &contentService{
		repo:      deps.Repository,
		markdown:  goldmark.New(goldmark.WithExtensions(extension.GFM)),
		sanitizer: bluemonday.UGCPolicy(),
		logger:    logger,
	}, nil
}

func (s *contentService) ListPosts(ctx context.Context, locale domain.Locale) ([]PostSummary, error) {
	posts, err := s.repo.ListPublished(ctx)
	if err != nil {
		return nil, translateContentRepositoryError(err)
	}

	summaries := make([]PostSummary, 0, len(posts))
	for _, post := range posts {
		summaries = append(summaries, postSummary(post, locale))
	}

	s.logger(ctx, "content.posts_listed", map[string]any{
		"count":  len(summaries),
		"locale": string(locale),
	})
	return summaries, nil
}

func (s *contentService) GetPost(ctx context.Context, slug string, locale domain.Locale) (PostView, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return PostView{}, fmt.Errorf("%w: slug is required", ErrContentInvalidInput)
	}

	post, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return PostView{}, translateContentRepositoryError(err)
	}

	body, err := s.renderBody(post.BodyMarkdown.Resolve(locale))
	if err != nil {
		return PostView{}, fmt.Errorf("%w: render %s: %v", ErrContentUnavailable, slug, err)
	}

	return PostView{
		PostSummary: postSummary(post, locale),
		BodyHTML:    body,
	}, nil
}

// renderBody converts markdown to HTML and strips anything outside the
// user-generated-content allowlist, script tags included.
func (s *contentService) renderBody(markdown string) (string, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := s.markdown.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	return s.sanitizer.Sanitize(buf.String()), nil
}

func postSummary(post domain.ContentPost, locale domain.Locale) PostSummary {
	return PostSummary{
		ID:          post.ID,
		Slug:        post.Slug,
		Title:       post.Title.Resolve(locale),
		Summary:     post.Summary.Resolve(locale),
		Author:      post.Author,
		Tags:        append([]string(nil), post.Tags...),
		PublishedAt: post.PublishedAt,
	}
}

func translateContentRepositoryError(err error) error {
	var repoErr repositories.RepositoryError
	if errors.As(err, &repoErr) {
		switch {
		case repoErr.IsNotFound():
			return fmt.Errorf("%w: %v", ErrContentNotFound, err)
		case repoErr.IsUnavailable():
			return fmt.Errorf("%w: %v", ErrContentUnavailable, err)
		}
	}
	return fmt.Errorf("%w: %v", ErrContentUnavailable, err)
}
