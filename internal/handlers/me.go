package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/himalayan-sound/api/internal/platform/httpx"
)

// UserHandlers serves the mock user profile and wishlist. Both are static
// demo data: updates validate and echo, nothing is stored.
type UserHandlers struct {
	clock func() time.Time
}

const maxProfileBodySize = 16 * 1024

func NewUserHandlers(clock func() time.Time) *UserHandlers {
	if clock == nil {
		clock = time.Now
	}
	return &UserHandlers{clock: func() time.Time { return clock().UTC() }}
}

// Routes wires the /user endpoints onto the provided router.
func (h *UserHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Get("/profile", h.getProfile)
	r.Put("/profile", h.updateProfile)
	r.Get("/wishlist", h.getWishlist)
	r.Post("/wishlist", h.addWishlistItem)
	r.Delete("/wishlist/{productId}", h.removeWishlistItem)
}

func demoProfile() map[string]any {
	return map[string]any{
		"id":     "demo-user",
		"email":  "demo@himalayan-sound.example",
		"name":   "Demo User",
		"locale": "en",
	}
}

type updateProfileRequest struct {
	Name   string `json:"name"`
	Locale string `json:"locale"`
}

type wishlistItemRequest struct {
	ProductID string `json:"productId"`
}

func (h *UserHandlers) getProfile(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"profile": demoProfile()})
}

func (h *UserHandlers) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req updateProfileRequest
	if err := decodeJSONBody(r, maxProfileBodySize, &req); err != nil {
		writeBodyError(w, r, err)
		return
	}

	profile := demoProfile()
	if name := strings.TrimSpace(req.Name); name != "" {
		profile["name"] = name
	}
	if locale := strings.ToLower(strings.TrimSpace(req.Locale)); locale != "" {
		switch locale {
		case "en", "uk", "ru":
			profile["locale"] = locale
		default:
			httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "unsupported locale", http.StatusBadRequest))
			return
		}
	}
	profile["updatedAt"] = h.clock().Format(time.RFC3339)

	httpx.WriteJSON(w, http.StatusOK, map[string]any{"profile": profile})
}

func (h *UserHandlers) getWishlist(w http.ResponseWriter, r *http.Request) {
	items := []map[string]any{
		{"productId": "sb-full-moon-21", "addedAt": "2026-02-14T10:00:00Z"},
		{"productId": "bell-tingsha-7", "addedAt": "2026-03-01T16:30:00Z"},
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"items": items,
		"count": len(items),
	})
}

func (h *UserHandlers) addWishlistItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req wishlistItemRequest
	if err := decodeJSONBody(r, maxProfileBodySize, &req); err != nil {
		writeBodyError(w, r, err)
		return
	}
	productID := strings.TrimSpace(req.ProductID)
	if productID == "" {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "productId is required", http.StatusBadRequest))
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, map[string]any{
		"item": map[string]any{
			"productId": productID,
			"addedAt":   h.clock().Format(time.RFC3339),
		},
	})
}

func (h *UserHandlers) removeWishlistItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if strings.TrimSpace(chi.URLParam(r, "productId")) == "" {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "productId is required", http.StatusBadRequest))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
