package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/himalayan-sound/api/internal/media"
	"github.com/himalayan-sound/api/internal/platform/httpx"
)

// MediaHandlers proxies upload and delete requests to the simulated hosting
// providers.
type MediaHandlers struct {
	registry *media.Registry
}

const maxMediaBodySize = 64 * 1024

func NewMediaHandlers(registry *media.Registry) *MediaHandlers {
	return &MediaHandlers{registry: registry}
}

// Routes wires the /media endpoints onto the provided router.
func (h *MediaHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Post("/{provider}", h.upload)
	r.Delete("/{provider}/{assetId}", h.delete)
}

type uploadRequest struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	SizeBytes   int64  `json:"sizeBytes"`
	Title       string `json:"title"`
}

func (h *MediaHandlers) upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	provider, err := h.resolveProvider(w, r)
	if err != nil {
		return
	}

	var req uploadRequest
	if err := decodeJSONBody(r, maxMediaBodySize, &req); err != nil {
		writeBodyError(w, r, err)
		return
	}

	asset, err := provider.Upload(ctx, media.UploadRequest{
		FileName:    req.FileName,
		ContentType: req.ContentType,
		SizeBytes:   req.SizeBytes,
		Title:       req.Title,
	})
	if err != nil {
		h.writeMediaError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, map[string]any{
		"asset": map[string]any{
			"id":         asset.ID,
			"provider":   asset.Provider,
			"url":        asset.URL,
			"fileName":   asset.FileName,
			"uploadedAt": asset.UploadedAt.Format(time.RFC3339),
		},
	})
}

func (h *MediaHandlers) delete(w http.ResponseWriter, r *http.Request) {
	provider, err := h.resolveProvider(w, r)
	if err != nil {
		return
	}

	if err := provider.Delete(r.Context(), chi.URLParam(r, "assetId")); err != nil {
		h.writeMediaError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *MediaHandlers) resolveProvider(w http.ResponseWriter, r *http.Request) (media.Provider, error) {
	ctx := r.Context()
	if h.registry == nil {
		httpx.WriteError(ctx, w, httpx.NewError("media_unavailable", "media registry is unavailable", http.StatusServiceUnavailable))
		return nil, errors.New("registry missing")
	}
	provider, err := h.registry.Provider(chi.URLParam(r, "provider"))
	if err != nil {
		httpx.WriteError(ctx, w, httpx.NewError("unsupported_provider", "unknown media provider", http.StatusNotFound))
		return nil, err
	}
	return provider, nil
}

func (h *MediaHandlers) writeMediaError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	switch {
	case errors.Is(err, media.ErrInvalidInput):
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", err.Error(), http.StatusBadRequest))
	case errors.Is(err, media.ErrAssetNotFound):
		httpx.WriteError(ctx, w, httpx.NewError("asset_not_found", "asset not found", http.StatusNotFound))
	default:
		httpx.WriteError(ctx, w, httpx.NewError("media_unavailable", "media provider request failed", http.StatusBadGateway))
	}
}
