package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/himalayan-sound/api/internal/platform/httpx"
	"github.com/himalayan-sound/api/internal/services"
)

// ContentHandlers serves the localized blog surface.
type ContentHandlers struct {
	content services.ContentService
}

func NewContentHandlers(contentSvc services.ContentService) *ContentHandlers {
	return &ContentHandlers{content: contentSvc}
}

// Routes wires the /content endpoints onto the provided router.
func (h *ContentHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Get("/posts", h.listPosts)
	r.Get("/posts/{slug}", h.getPost)
}

func (h *ContentHandlers) listPosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.content == nil {
		httpx.WriteError(ctx, w, httpx.NewError("content_unavailable", "content service is unavailable", http.StatusServiceUnavailable))
		return
	}

	locale := requestLocale(r)
	posts, err := h.content.ListPosts(ctx, locale)
	if err != nil {
		h.writeContentError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"posts":  posts,
		"count":  len(posts),
		"locale": string(locale),
	})
}

func (h *ContentHandlers) getPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.content == nil {
		httpx.WriteError(ctx, w, httpx.NewError("content_unavailable", "content service is unavailable", http.StatusServiceUnavailable))
		return
	}

	post, err := h.content.GetPost(ctx, chi.URLParam(r, "slug"), requestLocale(r))
	if err != nil {
		h.writeContentError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"post": post})
}

func (h *ContentHandlers) writeContentError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	switch {
	case errors.Is(err, services.ErrContentInvalidInput):
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "invalid content request", http.StatusBadRequest))
	case errors.Is(err, services.ErrContentNotFound):
		httpx.WriteError(ctx, w, httpx.NewError("post_not_found", "post not found", http.StatusNotFound))
	default:
		httpx.WriteError(ctx, w, httpx.NewError("content_unavailable", "content lookup failed", http.StatusBadGateway))
	}
}
