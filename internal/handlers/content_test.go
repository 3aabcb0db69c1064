package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/himalayan-sound/api/internal/domain"
	"github.com/himalayan-sound/api/internal/services"
)

type stubContentService struct {
	posts      []services.PostSummary
	post       services.PostView
	err        error
	lastLocale domain.Locale
	lastSlug   string
}

func (s *stubContentService) ListPosts(_ context.Context, locale domain.Locale) ([]services.PostSummary, error) {
	s.lastLocale = locale
	return s.posts, s.err
}

func (s *stubContentService) GetPost(_ context.Context, slug string, locale domain.Locale) (services.PostView, error) {
	s.lastSlug = slug
	s.lastLocale = locale
	return s.post, s.err
}

func contentTestRouter(svc services.ContentService) chi.Router {
	r := chi.NewRouter()
	NewContentHandlers(svc).Routes(r)
	return r
}

func TestListPostsHandler(t *testing.T) {
	svc := &stubContentService{posts: []services.PostSummary{{Slug: "first"}}}
	r := contentTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/posts?locale=ru", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if svc.lastLocale != domain.LocaleRU {
		t.Fatalf("locale = %q", svc.lastLocale)
	}
	var body struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("parse body: %v", err)
	}
	if body.Count != 1 {
		t.Fatalf("count = %d", body.Count)
	}
}

func TestGetPostHandler(t *testing.T) {
	svc := &stubContentService{post: services.PostView{
		PostSummary: services.PostSummary{Slug: "first"},
		BodyHTML:    "<p>hello</p>",
	}}
	r := contentTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/posts/first", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if svc.lastSlug != "first" {
		t.Fatalf("slug = %q", svc.lastSlug)
	}
}

func TestGetPostHandlerNotFound(t *testing.T) {
	r := contentTestRouter(&stubContentService{err: services.ErrContentNotFound})

	req := httptest.NewRequest(http.MethodGet, "/posts/missing", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}
